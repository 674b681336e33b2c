// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// padFrac is the symmetric full-view padding added to each axis's
// extent, as a fraction of that axis's own range.
const padFrac = 0.05

// Generate samples the evaluator at numPoints+1 evenly spaced values
// of t in [0,1], remaps each coordinate from [0,1] to [-1,1], and
// normalizes the result per the given scale mode. In 2D, z is forced
// to 0 and the position buffer holds 2 floats per vertex; in 3D the
// bounding cube wireframe is attached. fullView expands each axis's
// extents by 5% of its own range on both sides before normalization.
//
// The returned buffers are always finite: a zero axis range never
// produces a division by zero (the scale folds to 1).
func Generate(mode ScaleMode, numPoints int, eval Evaluator, space Space, fullView bool) (*Curve, error) {
	if numPoints < 1 {
		return nil, fmt.Errorf("curve.Generate: numPoints must be >= 1, got %d", numPoints)
	}
	if eval == nil {
		return nil, fmt.Errorf("curve.Generate: nil evaluator")
	}
	n := numPoints + 1
	pts := make([]math32.Vector3, n)
	colors := make([]float32, 0, n*4)
	bounds := math32.B3Empty()
	for i := range n {
		s := eval(float32(i) / float32(numPoints))
		p := s.Point()
		p = math32.Vec3(2*p.X-1, 2*p.Y-1, 2*p.Z-1)
		if space == TwoD {
			p.Z = 0
		}
		pts[i] = p
		bounds.ExpandByPoint(p)
		c := s.Color()
		colors = append(colors, c.X, c.Y, c.Z, c.W)
	}

	ext := bounds
	if fullView {
		ext.ExpandByVector(ext.Size().MulScalar(padFrac))
	}
	normalize(pts, mode, ext)

	cv := &Curve{
		Colors:    colors,
		NumPoints: numPoints,
		Space:     space,
		Mode:      mode,
		Bounds:    bounds,
		Center:    math32.Vec3(0.5, 0.5, 0.5),
		Scale:     aspectScale(bounds),
	}
	cv.Positions = flatten(pts, space)
	if space == ThreeD {
		cv.Cube = CubeStrip()
	}
	return cv, nil
}

// normalize applies the scale policy in place: each coordinate is
// re-centered on the extents' center and divided by half the scale
// range, so a full-range axis spans exactly [-1,1].
func normalize(pts []math32.Vector3, mode ScaleMode, ext math32.Box3) {
	if mode == NoScale {
		return
	}
	ctr := ext.Center()
	size := ext.Size()
	sx, sy, sz := floorOne(size.X), floorOne(size.Y), floorOne(size.Z)
	if mode == Fit {
		s := floorOne(math32.Max(size.X, math32.Max(size.Y, size.Z)))
		sx, sy, sz = s, s, s
	}
	for i, p := range pts {
		pts[i] = math32.Vec3(
			(p.X-ctr.X)/(sx/2),
			(p.Y-ctr.Y)/(sy/2),
			(p.Z-ctr.Z)/(sz/2))
	}
}

// aspectScale is the camera aspect scale: the largest axis range of
// the un-padded extents, with a floor of 1 for degenerate geometry.
func aspectScale(bounds math32.Box3) float32 {
	size := bounds.Size()
	return floorOne(math32.Max(size.X, math32.Max(size.Y, size.Z)))
}

// floorOne guards scale divisors: a zero range maps to identity scale.
func floorOne(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// flatten packs points into the flat position buffer:
// x,y per vertex in 2D, x,y,z in 3D.
func flatten(pts []math32.Vector3, space Space) []float32 {
	if space == TwoD {
		out := make([]float32, 0, len(pts)*2)
		for _, p := range pts {
			out = append(out, p.X, p.Y)
		}
		return out
	}
	out := make([]float32, 0, len(pts)*3)
	for _, p := range pts {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}
