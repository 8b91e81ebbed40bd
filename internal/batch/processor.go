package batch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/media-scribe/internal/download"
	"github.com/ytget/media-scribe/internal/model"
	"github.com/ytget/media-scribe/internal/platform"
	"github.com/ytget/media-scribe/internal/transcribe"
)

// Processor holds the job queue and runs it on a single worker goroutine.
// Only the worker mutates job status; other goroutines read jobs and set
// the cancel flag.
type Processor struct {
	mu   sync.RWMutex
	jobs []*model.TranscriptionJob

	running         bool
	cancelRequested bool

	downloader  download.Downloader
	transcriber transcribe.Transcriber

	onJobUpdate     func(*model.TranscriptionJob)
	onJobDone       func(*model.TranscriptionJob)
	onBatchProgress func(completed, total int)
	onBatchDone     func(cancelled bool)
}

// NewProcessor creates a batch processor using the given collaborators
func NewProcessor(downloader download.Downloader, transcriber transcribe.Transcriber) *Processor {
	return &Processor{
		downloader:  downloader,
		transcriber: transcriber,
	}
}

// SetJobUpdateCallback sets the callback for job state changes
func (p *Processor) SetJobUpdateCallback(callback func(*model.TranscriptionJob)) {
	p.onJobUpdate = callback
}

// SetJobDoneCallback sets the callback fired once per processed job,
// whether it completed or failed.
func (p *Processor) SetJobDoneCallback(callback func(*model.TranscriptionJob)) {
	p.onJobDone = callback
}

// SetBatchProgressCallback sets the callback for overall progress
// (finished jobs out of total).
func (p *Processor) SetBatchProgressCallback(callback func(completed, total int)) {
	p.onBatchProgress = callback
}

// SetBatchDoneCallback sets the callback fired when the worker loop exits
func (p *Processor) SetBatchDoneCallback(callback func(cancelled bool)) {
	p.onBatchDone = callback
}

// Add validates source and appends a pending job. Source must be an
// existing media file or a recognized YouTube URL.
func (p *Processor) Add(source string) (*model.TranscriptionJob, error) {
	source = strings.TrimSpace(source)

	var kind model.SourceKind
	switch {
	case platform.IsYouTubeURL(source):
		kind = model.SourceKindYouTube
	case platform.IsValidMediaFile(source):
		kind = model.SourceKindLocal
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSource, source)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, job := range p.jobs {
		if job.Source == source && !job.Status.IsFinished() {
			return nil, fmt.Errorf("%w: source already queued: %s", ErrInvalidState, source)
		}
	}

	job := &model.TranscriptionJob{
		ID:     generateJobID(),
		Source: source,
		Kind:   kind,
		Status: model.JobStatusPending,
	}
	if kind == model.SourceKindLocal {
		job.MediaPath = source
	}
	p.jobs = append(p.jobs, job)

	return job, nil
}

// Remove deletes a job from the queue. Only pending jobs can be removed.
func (p *Processor) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, job := range p.jobs {
		if job.ID != id {
			continue
		}
		if job.Status != model.JobStatusPending {
			return fmt.Errorf("%w: cannot remove job in status %s", ErrInvalidState, job.Status)
		}
		p.jobs = append(p.jobs[:i], p.jobs[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: job not found: %s", ErrInvalidState, id)
}

// Clear empties the queue. Not allowed while a run is active.
func (p *Processor) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("%w: cannot clear while running", ErrInvalidState)
	}
	p.jobs = nil
	return nil
}

// Jobs returns a snapshot of the queue in FIFO order
func (p *Processor) Jobs() []*model.TranscriptionJob {
	p.mu.RLock()
	defer p.mu.RUnlock()

	jobs := make([]*model.TranscriptionJob, len(p.jobs))
	copy(jobs, p.jobs)
	return jobs
}

// Get returns a job by ID
func (p *Processor) Get(id string) (*model.TranscriptionJob, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, job := range p.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return nil, false
}

// IsRunning reports whether the worker loop is active
func (p *Processor) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Start launches the worker goroutine with an immutable settings snapshot.
// Fails with ErrAlreadyRunning while a run is active and with
// ErrInvalidState when the queue holds no pending jobs.
func (p *Processor) Start(settings transcribe.Settings) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrAlreadyRunning
	}

	pending := 0
	for _, job := range p.jobs {
		if job.Status == model.JobStatusPending {
			pending++
		}
	}
	if pending == 0 {
		return fmt.Errorf("%w: no pending jobs", ErrInvalidState)
	}

	p.running = true
	p.cancelRequested = false

	go p.run(settings)
	return nil
}

// Cancel requests a cooperative stop. The in-flight job finishes its
// external call; no further job starts afterwards.
func (p *Processor) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		p.cancelRequested = true
	}
}

// run is the worker loop. It processes pending jobs in FIFO order until
// the queue is drained or cancellation is observed.
func (p *Processor) run(settings transcribe.Settings) {
	cancelled := false

	for {
		p.mu.Lock()
		if p.cancelRequested {
			cancelled = true
			p.mu.Unlock()
			break
		}
		job := p.nextPendingLocked()
		p.mu.Unlock()

		if job == nil {
			break
		}

		p.process(job, settings)
		p.notifyBatchProgress()
	}

	if cancelled {
		p.cancelPendingJobs()
	}

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	log.Printf("[batch] run finished (cancelled=%v)", cancelled)
	if p.onBatchDone != nil {
		p.onBatchDone(cancelled)
	}
}

// process runs one job end to end. Errors are attached to the job and
// never propagate out of the worker loop.
func (p *Processor) process(job *model.TranscriptionJob, settings transcribe.Settings) {
	p.mu.Lock()
	job.StartedAt = time.Now()
	p.mu.Unlock()

	if job.Kind == model.SourceKindYouTube {
		if err := p.downloadJob(job); err != nil {
			p.failJob(job, err)
			return
		}
	}

	p.setJobStatus(job, model.JobStatusTranscribing)

	result, err := p.transcriber.Transcribe(context.Background(), transcribe.Request{
		MediaPath: job.MediaPath,
		Settings:  settings,
		OnProgress: func(percent int) {
			p.setJobProgress(job, percent)
		},
	})
	if err != nil {
		p.failJob(job, err)
		return
	}

	outputPath := platform.TranscriptPath(job.MediaPath)
	if err := platform.SaveTextFile(outputPath, result.Text); err != nil {
		p.failJob(job, fmt.Errorf("%w: %v", ErrFileWrite, err))
		return
	}

	p.mu.Lock()
	job.Text = result.Text
	job.Segments = result.Segments
	job.OutputPath = outputPath
	job.Status = model.JobStatusCompleted
	job.Percent = 100
	job.Progress = 1.0
	job.FinishedAt = time.Now()
	p.mu.Unlock()

	p.notifyJobUpdate(job)
	p.notifyJobDone(job)
}

// downloadJob fetches the job's URL and records the local media path
func (p *Processor) downloadJob(job *model.TranscriptionJob) error {
	p.setJobStatus(job, model.JobStatusDownloading)

	path, err := p.downloader.Download(context.Background(), job.Source, func(progress download.Progress) {
		p.mu.Lock()
		if progress.Percent >= 0 {
			job.Percent = progress.Percent
			job.Progress = float64(progress.Percent) / 100.0
		}
		if progress.Title != "" {
			job.Title = progress.Title
		}
		p.mu.Unlock()
		p.notifyJobUpdate(job)
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	job.MediaPath = path
	p.mu.Unlock()
	return nil
}

// failJob marks a job as failed and emits its completion events
func (p *Processor) failJob(job *model.TranscriptionJob, err error) {
	log.Printf("[batch] job %s failed: %v", job.ID, err)

	p.mu.Lock()
	job.Status = model.JobStatusError
	job.LastError = err.Error()
	job.FinishedAt = time.Now()
	p.mu.Unlock()

	p.notifyJobUpdate(job)
	p.notifyJobDone(job)
}

// cancelPendingJobs marks every still-pending job as cancelled
func (p *Processor) cancelPendingJobs() {
	p.mu.Lock()
	var cancelledJobs []*model.TranscriptionJob
	for _, job := range p.jobs {
		if job.Status == model.JobStatusPending {
			job.Status = model.JobStatusCancelled
			job.FinishedAt = time.Now()
			cancelledJobs = append(cancelledJobs, job)
		}
	}
	p.mu.Unlock()

	for _, job := range cancelledJobs {
		p.notifyJobUpdate(job)
	}
}

// nextPendingLocked returns the first pending job. Caller must hold p.mu.
func (p *Processor) nextPendingLocked() *model.TranscriptionJob {
	for _, job := range p.jobs {
		if job.Status == model.JobStatusPending {
			return job
		}
	}
	return nil
}

func (p *Processor) setJobStatus(job *model.TranscriptionJob, status model.JobStatus) {
	p.mu.Lock()
	job.Status = status
	job.Percent = 0
	job.Progress = 0
	p.mu.Unlock()
	p.notifyJobUpdate(job)
}

func (p *Processor) setJobProgress(job *model.TranscriptionJob, percent int) {
	p.mu.Lock()
	job.Percent = percent
	job.Progress = float64(percent) / 100.0
	p.mu.Unlock()
	p.notifyJobUpdate(job)
}

func (p *Processor) notifyJobUpdate(job *model.TranscriptionJob) {
	if p.onJobUpdate != nil {
		p.onJobUpdate(job)
	}
}

func (p *Processor) notifyJobDone(job *model.TranscriptionJob) {
	if p.onJobDone != nil {
		p.onJobDone(job)
	}
}

func (p *Processor) notifyBatchProgress() {
	if p.onBatchProgress == nil {
		return
	}

	p.mu.RLock()
	total := len(p.jobs)
	completed := 0
	for _, job := range p.jobs {
		if job.Status.IsFinished() {
			completed++
		}
	}
	p.mu.RUnlock()

	p.onBatchProgress(completed, total)
}

// generateJobID generates a unique job ID
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("job-%d", time.Now().UnixNano())
	}
	return "job-" + id.String()
}
