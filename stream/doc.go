// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stream provides execution streams and device handles for mlx-go.
//
// # Overview
//
// A Stream is an in-order queue tagged with a device. Array operations
// take an optional trailing stream argument; omitted, they run on the
// process-wide default stream. Operations issued on the same stream
// observe program order; across streams, ordering requires an explicit
// Synchronize.
//
// # Basic Usage
//
//	import "github.com/MLXPorts/mlx-go/stream"
//
//	dev, err := stream.DeviceByName("cpu")
//	if err != nil {
//	    return err
//	}
//	s := stream.New(dev)
//
//	err = stream.With(s, func() error {
//	    // operations here default to s
//	    return nil
//	})
//	stream.Synchronize(s)
//
// With restores the previous default on every exit path, including
// panics, and nests to arbitrary depth.
//
// The boot default device is CPU; set MLXGO_DEVICE=gpu to start on the
// GPU device instead.
package stream
