// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes provides stock parametric curve evaluators for the
// demo viewer and tests. All evaluators emit positions in [0,1]
// caller space (the curve package remaps to [-1,1]) and colors graded
// along the parameter.
package shapes

import (
	"fmt"
	"sort"

	"cogentcore.org/core/math32"

	"github.com/paramviz/paramviz/curve"
)

// grade colors a sample along the parameter: warm at t=0, cool at t=1.
func grade(t float32) math32.Vector4 {
	return math32.Vec4(1-t, 0.2+0.6*t, 0.4+0.6*t*(1-t), 1)
}

// Line is the unit diagonal in the XY plane.
func Line() curve.Evaluator {
	return func(t float32) curve.Point {
		return curve.Sample{Pos: math32.Vec3(t, t, 0), Clr: grade(t)}
	}
}

// Circle is a unit circle in the XY plane, centered in caller space.
func Circle() curve.Evaluator {
	return func(t float32) curve.Point {
		a := 2 * math32.Pi * t
		return curve.Sample{
			Pos: math32.Vec3(0.5+0.5*math32.Cos(a), 0.5+0.5*math32.Sin(a), 0),
			Clr: grade(t),
		}
	}
}

// Lissajous is a planar lissajous figure with frequency ratio a:b and
// phase delta.
func Lissajous(a, b int, delta float32) curve.Evaluator {
	return func(t float32) curve.Point {
		w := 2 * math32.Pi * t
		return curve.Sample{
			Pos: math32.Vec3(
				0.5+0.5*math32.Sin(float32(a)*w+delta),
				0.5+0.5*math32.Sin(float32(b)*w),
				0),
			Clr: grade(t),
		}
	}
}

// Helix winds the given number of turns around the z axis,
// rising with t.
func Helix(turns int) curve.Evaluator {
	return func(t float32) curve.Point {
		a := 2 * math32.Pi * float32(turns) * t
		return curve.Sample{
			Pos: math32.Vec3(0.5+0.4*math32.Cos(a), 0.5+0.4*math32.Sin(a), t),
			Clr: grade(t),
		}
	}
}

// TorusKnot is the (p,q) torus knot scaled into [0,1]^3.
func TorusKnot(p, q int) curve.Evaluator {
	return func(t float32) curve.Point {
		a := 2 * math32.Pi * t
		r := math32.Cos(float32(q)*a) + 2
		return curve.Sample{
			Pos: math32.Vec3(
				0.5+r*math32.Cos(float32(p)*a)/6,
				0.5+r*math32.Sin(float32(p)*a)/6,
				0.5+math32.Sin(float32(q)*a)/2),
			Clr: grade(t),
		}
	}
}

var byName = map[string]func() curve.Evaluator{
	"line":      Line,
	"circle":    Circle,
	"lissajous": func() curve.Evaluator { return Lissajous(3, 2, math32.Pi/2) },
	"helix":     func() curve.Evaluator { return Helix(6) },
	"torusknot": func() curve.Evaluator { return TorusKnot(2, 3) },
}

// Names lists the available stock evaluators, sorted.
func Names() []string {
	ns := make([]string, 0, len(byName))
	for n := range byName {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// ByName returns the stock evaluator with the given name
// (with default parameters), or an error listing the valid names.
func ByName(name string) (curve.Evaluator, error) {
	fn, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("shapes: no curve named %q (have %v)", name, Names())
	}
	return fn(), nil
}
