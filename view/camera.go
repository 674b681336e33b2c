// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera contains the model-view and projection matrices, for uniform
// uploading. Field order matches the shader's uniform struct.
type Camera struct {
	ModelView  math32.Matrix4
	Projection math32.Matrix4
}

// View framing constants. ViewInset is an empirical fit keeping the
// unit cube inscribed in the 45 degree frustum at distance
// CameraDistance; CubeFraming is the initial rotation that frames the
// cube on the first 3D frame. Preserve numerically: these were tuned
// visually, not derived.
const (
	FOV            = 45
	CameraDistance = 5
	NearPlane      = 0.01
	FarPlane       = 50
	RotationStep   = 0.005
	CubeFraming    = -0.5
)

// ViewInset returns sqrt(1/3.1), the empirical whole-scene scale.
func ViewInset() float32 {
	return math32.Sqrt(1 / 3.1)
}

// ModelView builds the per-frame model-view matrix for the given
// animation angle and curve aspect record (center, scale). Applied to
// a vertex right-to-left: re-center, expand to the display volume,
// spin about z, tip -90 degrees about x so z is up on screen, push
// back to camera distance, and inset the whole scene.
func ModelView(angle float32, center math32.Vector3, scale float32) math32.Matrix4 {
	var idq math32.Quat
	idq.SetIdentity()

	k := ViewInset()
	var inset math32.Matrix4 // S(k) * T(0,0,-dist)
	inset.SetTransform(math32.Vec3(0, 0, -CameraDistance*k), idq, math32.Vec3(k, k, k))

	var tipX math32.Matrix4
	tipX.SetRotationX(-math32.Pi / 2)

	var spinZ math32.Matrix4
	spinZ.SetRotationZ(angle)

	s := 2 / scale
	var fill math32.Matrix4 // S(2/scale) * T(-center)
	fill.SetTransform(center.MulScalar(-s), idq, math32.Vec3(s, s, s))

	var a, b, mv math32.Matrix4
	a.MulMatrices(&inset, &tipX)
	b.MulMatrices(&a, &spinZ)
	mv.MulMatrices(&b, &fill)
	return mv
}

// Projection builds the standard 45 degree perspective projection for
// the given render size. The near plane must be > 0: a zero near
// plane degenerates the frustum height.
func Projection(size image.Point) math32.Matrix4 {
	aspect := float32(size.X) / float32(size.Y)
	var pj math32.Matrix4
	pj.SetPerspective(FOV, aspect, NearPlane, FarPlane)
	return pj
}
