// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

// CubeStripLen is the number of vertices in the bounding cube
// wireframe strip.
const CubeStripLen = 16

// cubeStrip is the unit cube's 12 edges as one connected line strip.
// Corner order walks the bottom face, rises to the top face, walks it,
// then picks up the three remaining vertical edges, retracing three
// edges along the way (a cube has no open Euler trail, so 15 segments
// is the strip minimum for 12 edges).
var cubeStrip = [CubeStripLen * 3]float32{
	-1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,
	-1, -1, -1,
	-1, -1, 1,
	1, -1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, -1, 1,
	1, -1, 1,
	1, -1, -1,
	1, 1, -1,
	1, 1, 1,
	-1, 1, 1,
	-1, 1, -1,
}

// CubeStrip returns a copy of the bounding cube wireframe strip:
// 16 vertices x 3 coordinates in [-1,1], line-strip order.
func CubeStrip() []float32 {
	cp := make([]float32, len(cubeStrip))
	copy(cp, cubeStrip[:])
	return cp
}
