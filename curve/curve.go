// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve samples parametric curves and normalizes the sampled
// geometry into the canonical [-1,1] display volume, producing the
// flat vertex and color buffers consumed by the view package.
package curve

import (
	"strings"

	"cogentcore.org/core/math32"
)

// Space is the coordinate space a curve is sampled in.
type Space int32

const (
	// TwoD samples in the XY plane: z is forced to 0 and the
	// position buffer holds 2 floats per vertex.
	TwoD Space = iota

	// ThreeD samples all three coordinates (3 floats per vertex)
	// and includes the bounding cube wireframe.
	ThreeD
)

func (sp Space) String() string {
	if sp == TwoD {
		return "2D"
	}
	return "3D"
}

// SpaceFromString parses "2D" or "3D" (case insensitive).
// Anything else is 3D.
func SpaceFromString(s string) Space {
	if strings.EqualFold(s, "2D") {
		return TwoD
	}
	return ThreeD
}

// ScaleMode determines how sampled geometry is normalized into the
// display volume after the initial [0,1] -> [-1,1] remap.
type ScaleMode int32

const (
	// Fit applies one uniform scale derived from the largest axis
	// range, preserving the curve's aspect ratio. At least one axis
	// fills the volume exactly; the others may leave a margin.
	Fit ScaleMode = iota

	// Stretch applies an independent scale per axis, derived from
	// that axis's own range. Every non-degenerate axis fills the
	// volume exactly; the shape may be distorted.
	Stretch

	// NoScale applies no normalization beyond the initial remap.
	NoScale
)

func (sm ScaleMode) String() string {
	switch sm {
	case Fit:
		return "fit"
	case Stretch:
		return "stretch"
	}
	return "none"
}

// ScaleModeFromString parses "fit" and "stretch" (case insensitive).
// Any other value means no scaling.
func ScaleModeFromString(s string) ScaleMode {
	switch {
	case strings.EqualFold(s, "fit"):
		return Fit
	case strings.EqualFold(s, "stretch"):
		return Stretch
	}
	return NoScale
}

// Point is one sample of a parametric curve: a spatial position with
// coordinates in [0,1] caller space, and an RGBA color with components
// in [0,1].
type Point interface {
	// Point returns the spatial position of the sample.
	Point() math32.Vector3

	// Color returns the RGBA color of the sample.
	Color() math32.Vector4
}

// Evaluator is the caller-supplied parametric function, evaluated at
// N+1 evenly spaced values of t in [0,1].
type Evaluator func(t float32) Point

// Sample is a basic concrete [Point].
type Sample struct {
	Pos math32.Vector3
	Clr math32.Vector4
}

func (s Sample) Point() math32.Vector3 { return s.Pos }
func (s Sample) Color() math32.Vector4 { return s.Clr }

// Curve is the normalized geometry for one generated curve,
// immutable once returned by [Generate].
type Curve struct {
	// Positions is the flat normalized vertex buffer:
	// 2 floats per vertex in 2D, 3 in 3D, NumPoints+1 vertices.
	Positions []float32

	// Colors is the flat color buffer, 4 floats (RGBA) per vertex.
	Colors []float32

	// Cube is the bounding cube wireframe strip in 3D
	// (16 vertices, 48 floats, pre-authored in [-1,1]^3,
	// never normalized). Nil in 2D.
	Cube []float32

	// NumPoints is the requested sample count N;
	// the buffers hold N+1 vertices.
	NumPoints int

	// Space the curve was sampled in.
	Space Space

	// Mode is the scale policy that was applied.
	Mode ScaleMode

	// Bounds are the un-padded extents of the remapped samples,
	// prior to normalization.
	Bounds math32.Box3

	// Center is the fixed camera aspect center.
	Center math32.Vector3

	// Scale is the camera aspect scale: the maximum axis range of
	// the un-padded extents, with a floor of 1.
	Scale float32
}

// Floats returns the number of position floats per vertex: 2 or 3.
func (c *Curve) Floats() int {
	if c.Space == TwoD {
		return 2
	}
	return 3
}
