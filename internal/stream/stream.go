// Package stream provides the logical execution queues mlx-go
// operations run on, and the process-wide default-stream context.
//
// Streams serialize the work submitted to them, so operations issued
// against one stream observe program order; distinct streams carry no
// ordering relative to each other until Synchronize joins one.
// Execution is eager (Do runs the submitted work before returning),
// which keeps read-back forcing-free and makes Synchronize a pure join
// point.
package stream

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// DeviceKind selects the compute device a stream is bound to.
type DeviceKind int

// Supported device kinds. The GPU device is a logical queue tag:
// streams bound to it behave like independent in-order CPU queues.
const (
	CPU DeviceKind = iota
	GPU
)

// String returns the canonical lowercase device name.
func (k DeviceKind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// Device is a handle for a compute device.
type Device struct {
	kind DeviceKind
}

// Process-wide device handles.
var (
	CPUDevice = Device{kind: CPU}
	GPUDevice = Device{kind: GPU}
)

// Kind returns the device's kind.
func (d Device) Kind() DeviceKind {
	return d.kind
}

// String returns the canonical device name.
func (d Device) String() string {
	return d.kind.String()
}

// DeviceByName resolves "cpu" or "gpu" to a device handle.
func DeviceByName(name string) (Device, error) {
	switch name {
	case "cpu":
		return CPUDevice, nil
	case "gpu":
		return GPUDevice, nil
	default:
		return Device{}, errors.Wrapf(ErrUnknownDevice, "no device named %q", name)
	}
}

// Stream is an opaque in-order execution queue bound to a device.
type Stream struct {
	id     uint64
	device Device
	mu     sync.Mutex
}

var streamIDs atomic.Uint64

// New creates a fresh queue handle on the given device.
func New(device Device) *Stream {
	return &Stream{
		id:     streamIDs.Add(1),
		device: device,
	}
}

// Device returns the device the stream is bound to.
func (s *Stream) Device() Device {
	return s.device
}

// ID returns the stream's process-unique identifier.
func (s *Stream) ID() uint64 {
	return s.id
}

// String describes the stream.
func (s *Stream) String() string {
	return fmt.Sprintf("stream(%d, %s)", s.id, s.device)
}

// Do runs f with the stream's serialization lock held. Work submitted
// to the same stream runs in submission order; Do returns only after f
// completes.
func (s *Stream) Do(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f()
}

// Synchronize blocks until all work submitted to the stream has
// drained. Repeated calls are idempotent.
func (s *Stream) Synchronize() {
	s.mu.Lock()
	defer s.mu.Unlock()
}

// The process-wide current default stream. All operations without an
// explicit stream argument land here, so With can scope a whole call
// region onto one queue.
var (
	defaultMu     sync.Mutex
	defaultStream = New(initialDevice())
)

// initialDevice picks the boot-time default device. MLXGO_DEVICE=gpu
// selects the gpu queue tag; anything else means cpu.
func initialDevice() Device {
	switch strings.ToLower(os.Getenv("MLXGO_DEVICE")) {
	case "gpu":
		return GPUDevice
	default:
		return CPUDevice
	}
}

// Default returns the current default stream.
func Default() *Stream {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultStream
}

// SetDefault installs s as the process-wide default stream. A nil
// stream is ignored.
func SetDefault(s *Stream) {
	if s == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStream = s
}

// swapDefault installs s and returns the previous default.
func swapDefault(s *Stream) *Stream {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultStream
	defaultStream = s
	return prev
}

// With installs s as the default stream for the dynamic extent of fn
// and restores the enclosing default on every exit path, including
// panics. Calls nest: an inner With restores the immediately enclosing
// default, not the original. A nil stream runs fn without an override.
func With(s *Stream, fn func() error) error {
	if fn == nil {
		return nil
	}
	if s == nil {
		return fn()
	}
	prev := swapDefault(s)
	defer swapDefault(prev)
	return fn()
}

// Resolve picks the explicit stream of a trailing optional argument,
// falling back to the process default.
func Resolve(s ...*Stream) *Stream {
	for _, st := range s {
		if st != nil {
			return st
		}
	}
	return Default()
}

// Synchronize joins the given stream, or the default stream when none
// is given.
func Synchronize(s ...*Stream) {
	Resolve(s...).Synchronize()
}
