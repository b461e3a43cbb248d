// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package stream

import (
	"github.com/MLXPorts/mlx-go/internal/stream"
)

// Type aliases for public API

// Stream is an in-order execution queue bound to a device.
type Stream = stream.Stream

// Device identifies where a stream executes.
type Device = stream.Device

// DeviceKind enumerates the supported device kinds.
type DeviceKind = stream.DeviceKind

// Device kind constants.
const (
	CPU DeviceKind = stream.CPU
	GPU DeviceKind = stream.GPU
)

// Prebuilt device handles.
var (
	CPUDevice = stream.CPUDevice
	GPUDevice = stream.GPUDevice
)

// ErrUnknownDevice reports a device name other than "cpu" or "gpu".
var ErrUnknownDevice = stream.ErrUnknownDevice

// DeviceByName resolves "cpu" or "gpu" to a device handle.
func DeviceByName(name string) (Device, error) {
	return stream.DeviceByName(name)
}

// New creates a fresh stream on the given device.
func New(device Device) *Stream {
	return stream.New(device)
}

// Default returns the current default stream.
func Default() *Stream {
	return stream.Default()
}

// SetDefault replaces the process-wide default stream. A nil stream is
// ignored.
func SetDefault(s *Stream) {
	stream.SetDefault(s)
}

// With runs fn with s as the default stream, restoring the previous
// default on every exit path. A nil stream runs fn unchanged.
//
// Example:
//
//	s := stream.New(stream.CPUDevice)
//	err := stream.With(s, func() error {
//	    sum, err := array.Add(a, b) // runs on s
//	    ...
//	})
func With(s *Stream, fn func() error) error {
	return stream.With(s, fn)
}

// Synchronize blocks until the given streams have drained; with no
// arguments it joins the default stream.
func Synchronize(s ...*Stream) {
	stream.Synchronize(s...)
}
