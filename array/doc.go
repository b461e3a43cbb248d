// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for n-dimensional arrays in mlx-go.
//
// # Overview
//
// This package contains:
//   - Array: an immutable dense n-dimensional value type
//   - Dtype: the closed set of element types with NumPy-style promotion
//   - Shape: dimension lists with broadcasting utilities
//   - Element-wise, comparison, and structural operations
//
// Arrays are values: every operation returns a new array and never
// mutates its operands, so arrays can be shared freely across
// goroutines without synchronization.
//
// # Basic Usage
//
//	import "github.com/MLXPorts/mlx-go/array"
//
//	func main() {
//	    x, _ := array.FromSlice([]float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	    y, _ := array.Ones(array.Shape{2, 3})
//
//	    z, _ := array.Add(x, y)      // element-wise, broadcasting
//	    w, _ := array.Multiply(z, 2) // scalars mix in without promotion surprises
//
//	    fmt.Println(w.ToNested())    // [[4 6 8] [10 12 14]]
//	}
//
// # Scalars and Promotion
//
// Binary operations accept an *Array or a host scalar (bool, any
// integer, any float, complex64/128) on either side. Two arrays
// promote to the smallest dtype that can represent both, following a
// fixed total order from Bool up to Complex64. Host scalars are weak:
// they adopt the other operand's dtype when it is compatible, so
// multiplying a Float16 array by 2.5 stays Float16.
//
// # Streams
//
// Every operation takes an optional trailing stream argument selecting
// the queue it runs on; omitted, the current default stream is used.
// See the stream package.
package array
