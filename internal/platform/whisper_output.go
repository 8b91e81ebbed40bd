package platform

import (
	"regexp"
	"strconv"
	"time"

	"github.com/ytget/media-scribe/internal/model"
)

// Whisper.cpp prints one line per decoded segment:
//
//	[00:00:00.000 --> 00:00:02.560]   Hello world.
//
// segmentLinePattern captures both timestamps and the text.
var segmentLinePattern = regexp.MustCompile(
	`^\s*\[(\d{2}):(\d{2}):(\d{2})[.,](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[.,](\d{3})\]\s?(.*)$`)

// WhisperOutputParser converts whisper.cpp stdout lines into transcript segments
type WhisperOutputParser struct{}

// NewWhisperOutputParser creates a new parser
func NewWhisperOutputParser() *WhisperOutputParser {
	return &WhisperOutputParser{}
}

// ParseSegmentLine parses one stdout line. The second return value is false
// for non-segment lines (banners, progress noise, empty lines).
func (p *WhisperOutputParser) ParseSegmentLine(line string) (model.Segment, bool) {
	match := segmentLinePattern.FindStringSubmatch(line)
	if match == nil {
		return model.Segment{}, false
	}

	start := timestampToDuration(match[1], match[2], match[3], match[4])
	end := timestampToDuration(match[5], match[6], match[7], match[8])

	return model.Segment{
		Start: start,
		End:   end,
		Text:  match[9],
	}, true
}

// ParseTranscript parses a complete whisper.cpp stdout dump into segments
func (p *WhisperOutputParser) ParseTranscript(output string) []model.Segment {
	var segments []model.Segment
	startIdx := 0
	for i := 0; i <= len(output); i++ {
		if i == len(output) || output[i] == '\n' {
			if seg, ok := p.ParseSegmentLine(output[startIdx:i]); ok {
				segments = append(segments, seg)
			}
			startIdx = i + 1
		}
	}
	return segments
}

// ProgressPercent estimates completion from the last decoded timestamp against
// the total media duration. Returns -1 when the duration is unknown.
func (p *WhisperOutputParser) ProgressPercent(decoded, total time.Duration) int {
	if total <= 0 {
		return -1
	}

	percent := int(float64(decoded) / float64(total) * 100)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent
}

// timestampToDuration converts hh, mm, ss, mmm capture groups to a duration.
// Groups already matched \d+, so Atoi cannot fail.
func timestampToDuration(hh, mm, ss, ms string) time.Duration {
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	seconds, _ := strconv.Atoi(ss)
	millis, _ := strconv.Atoi(ms)

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}
