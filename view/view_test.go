// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/paramviz/paramviz/curve"
)

func testCurve(t *testing.T, space curve.Space) *curve.Curve {
	t.Helper()
	eval := func(tt float32) curve.Point {
		return curve.Sample{
			Pos: math32.Vec3(tt, 0.5+0.5*math32.Sin(2*math32.Pi*tt), tt),
			Clr: math32.Vec4(tt, 1-tt, 0.5, 1),
		}
	}
	c, err := curve.Generate(curve.Fit, 100, eval, space, false)
	assert.NoError(t, err)
	return c
}

func TestViewerStates(t *testing.T) {
	vw := NewViewer(testCurve(t, curve.ThreeD))
	assert.Equal(t, Uninitialized, vw.State)
	assert.Error(t, vw.DrawFrame())
	assert.Error(t, vw.Init(nil, nil, image.Point{640, 480}))
	assert.Equal(t, Uninitialized, vw.State)

	// a scheduler that never grants a frame loops zero times
	assert.NoError(t, vw.Animate(func() bool { return false }))

	// Release before Init is a no-op
	vw.Release()
	assert.Equal(t, Uninitialized, vw.State)
}

func TestViewerFraming(t *testing.T) {
	// 3D starts at the one-shot cube framing angle, 2D at zero
	vw3 := NewViewer(testCurve(t, curve.ThreeD))
	vw3.size = image.Point{640, 480}
	vw2 := NewViewer(testCurve(t, curve.TwoD))
	vw2.size = image.Point{640, 480}
	assert.NotEqual(t, vw3.Frame().ModelView, vw2.Frame().ModelView)
	assert.Equal(t, ModelView(CubeFraming, vw3.Curve.Center, vw3.Curve.Scale),
		vw3.Frame().ModelView)
	assert.Equal(t, ModelView(0, vw2.Curve.Center, vw2.Curve.Scale),
		vw2.Frame().ModelView)
}

func TestViewerSetSize(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf,
		&slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	vw := NewViewer(testCurve(t, curve.ThreeD))
	vw.SetSize(image.Point{640, 480})
	square := vw.Frame().Projection

	// resize before Init still takes effect on the projection
	vw.SetSize(image.Point{1280, 480})
	assert.NotEqual(t, square, vw.Frame().Projection)
	assert.Contains(t, buf.String(), "render size changed")

	// no-op resize logs nothing
	buf.Reset()
	vw.SetSize(image.Point{1280, 480})
	assert.Empty(t, buf.String())
}

func TestViewerIndependentRotation(t *testing.T) {
	a := NewViewer(testCurve(t, curve.TwoD))
	b := NewViewer(testCurve(t, curve.TwoD))
	a.angle += 10 * RotationStep
	assert.Equal(t, float32(0), b.angle)
}

func TestViewerFrames(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	sz := image.Point{480, 320}
	rt := gpu.NewRenderTexture(gp, dev, sz, 4, gpu.Depth32)

	vw := NewViewer(testCurve(t, curve.ThreeD))
	assert.NoError(t, vw.Init(gp, rt, sz))
	assert.Equal(t, Ready, vw.State)
	// indexed draws on a strip pipeline need the matching format
	assert.Equal(t, wgpu.IndexFormatUint32, vw.Pipeline.Primitive.StripIndexFormat)

	before := vw.Frame()
	frames := 0
	err = vw.Animate(func() bool {
		frames++
		return frames <= 3
	})
	assert.NoError(t, err)
	assert.Equal(t, Animating, vw.State)
	// angle advanced, so the model-view moved on
	assert.NotEqual(t, before.ModelView, vw.Frame().ModelView)

	vw.Release()
	assert.Equal(t, Uninitialized, vw.State)
	rt.Release()
	gp.Release()
}
