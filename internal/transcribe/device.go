package transcribe

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Device selects the compute backend for whisper.cpp
type Device string

const (
	// DeviceCPU forces CPU-only inference
	DeviceCPU Device = "cpu"

	// DeviceGPU enables GPU offload when the hardware supports it
	DeviceGPU Device = "gpu"
)

// String returns the string representation of Device
func (d Device) String() string {
	return string(d)
}

// DeviceOptions returns the selectable compute devices
func DeviceOptions() []Device {
	return []Device{DeviceGPU, DeviceCPU}
}

var (
	gpuAvailable bool
	gpuOnce      sync.Once
)

// GPUAvailable probes the system for a usable GPU. The probe runs once and the
// result is cached — safe to call from multiple goroutines.
func GPUAvailable() bool {
	gpuOnce.Do(func() {
		gpuAvailable = detectGPU()
		log.Printf("[gpu] available=%v (os=%s)", gpuAvailable, runtime.GOOS)
	})
	return gpuAvailable
}

// DefaultDevice returns DeviceGPU when a GPU was detected, DeviceCPU otherwise
func DefaultDevice() Device {
	if GPUAvailable() {
		return DeviceGPU
	}
	return DeviceCPU
}

// ResolveDevice downgrades a GPU request to CPU when no GPU is available,
// mirroring the engine's own software fallback but making it visible in logs.
func ResolveDevice(requested Device) Device {
	if requested == DeviceGPU && !GPUAvailable() {
		log.Printf("[gpu] requested gpu but none detected, falling back to cpu")
		return DeviceCPU
	}
	if requested != DeviceCPU && requested != DeviceGPU {
		return DefaultDevice()
	}
	return requested
}

func detectGPU() bool {
	switch runtime.GOOS {
	case "darwin":
		// whisper.cpp ships with Metal support on Apple hardware
		return true
	case "linux":
		return detectGPULinux()
	default:
		return false
	}
}

// detectGPULinux scans /sys/class/drm/card* for a discrete GPU with VRAM info
func detectGPULinux() bool {
	cards, err := filepath.Glob("/sys/class/drm/card[0-9]*")
	if err != nil {
		return false
	}

	for _, card := range cards {
		// Skip render nodes (cardN-XXX)
		base := filepath.Base(card)
		if strings.Contains(base, "-") {
			continue
		}

		vramPath := filepath.Join(card, "device", "mem_info_vram_total")
		vramBytes, err := readSysfsInt(vramPath)
		if err != nil || vramBytes == 0 {
			continue // Not a discrete GPU or no VRAM info
		}

		log.Printf("[gpu] discrete gpu found: %s vram_total=%d MB", base, vramBytes/1024/1024)
		return true
	}

	return false
}

func readSysfsInt(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}
