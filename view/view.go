// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view renders a normalized [curve.Curve] as a rotating
// line strip, with a wireframe bounding cube in 3D mode, using the
// cogentcore gpu WebGPU framework.
package view

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/paramviz/paramviz/curve"
)

//go:embed shader.wgsl
var linesShader string

// ViewState is the render pipeline lifecycle state.
type ViewState int32

const (
	// Uninitialized: geometry exists, no GPU resources yet.
	Uninitialized ViewState = iota

	// Ready: GPU resources created and buffers uploaded.
	Ready

	// Animating: at least one frame has been drawn.
	Animating
)

func (vs ViewState) String() string {
	switch vs {
	case Ready:
		return "Ready"
	case Animating:
		return "Animating"
	}
	return "Uninitialized"
}

// cube is value set 0, the curve is value set 1 (3D);
// in 2D only the curve exists, at value set 0.
const (
	cubeValue  = 0
	curveValue = 1
)

// cubeGray is the constant bounding-cube line color.
var cubeGray = [4]float32{0.5, 0.5, 0.5, 1}

// Viewer owns the GPU resources for one curve: graphics system, line
// pipeline, static vertex buffers, and the camera uniform, plus the
// per-instance animation angle. Geometry is computed eagerly by
// [curve.Generate]; GPU setup is deferred until [Viewer.Init] is
// given a live render target.
type Viewer struct {
	// Curve is the normalized geometry being displayed.
	Curve *curve.Curve

	// State of the pipeline lifecycle.
	State ViewState

	// System manages the pipeline, vars and values.
	// The render target (surface or render texture) is owned by
	// the caller, as is the window it came from.
	System *gpu.GraphicsSystem

	// Pipeline is the single line-strip pipeline.
	Pipeline *gpu.GraphicsPipeline

	// camVal is the camera uniform value, re-uploaded every frame.
	camVal *gpu.Value

	// size is the current render target size, for the projection
	// aspect ratio.
	size image.Point

	// angle is the animation rotation about z, advanced by
	// RotationStep every frame. Owned by this Viewer: independent
	// Viewers do not share rotation state.
	angle float32

	// curveIndex is the vertex value set holding the curve.
	curveIndex int

	// hasCube is set in 3D mode.
	hasCube bool
}

// NewViewer returns a Viewer for the given generated curve,
// in the Uninitialized state.
func NewViewer(c *curve.Curve) *Viewer {
	vw := &Viewer{Curve: c}
	if c.Space == curve.ThreeD {
		vw.hasCube = true
		vw.curveIndex = curveValue
		vw.angle = CubeFraming
	}
	return vw
}

// Init acquires GPU resources on the given render target (a
// [gpu.Surface] for a window, or a [gpu.RenderTexture] offscreen):
// it creates the graphics system and line-strip pipeline, compiles
// the embedded shader, uploads the cube and curve vertex buffers once
// (geometry never changes after Init), and resolves the camera
// uniform. Shader or pipeline configuration failure is returned as an
// error; there is no silent degraded mode. Transitions Uninitialized
// to Ready; Init on an already initialized Viewer is an error.
func (vw *Viewer) Init(gp *gpu.GPU, rd gpu.Renderer, size image.Point) error {
	if vw.State != Uninitialized {
		return fmt.Errorf("view.Init: already initialized (state %s)", vw.State)
	}
	if gp == nil || rd == nil {
		return fmt.Errorf("view.Init: no GPU render target available")
	}
	sy := gpu.NewGraphicsSystem(gp, "paramviz", rd)

	pl := sy.AddGraphicsPipeline("lines")
	pl.SetTopology(gpu.LineStrip, false)
	// strip topologies need an explicit index format for indexed
	// draws; it must match the Index var type below.
	pl.Primitive.StripIndexFormat = wgpu.IndexFormatUint32
	pl.SetCullMode(wgpu.CullModeNone)
	sy.SetClearColor(color.RGBA{A: 255})

	sh := pl.AddShader("lines")
	sh.OpenCode(linesShader)
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")

	vgp := sy.Vars().AddVertexGroup()
	ugp := sy.Vars().AddGroup(gpu.Uniform)

	posv := vgp.Add("Pos", gpu.Float32Vector3, 0, gpu.VertexShader)
	clrv := vgp.Add("Color", gpu.Float32Vector4, 0, gpu.VertexShader)
	idxv := vgp.Add("Index", gpu.Uint32, 0, gpu.VertexShader)
	idxv.Role = gpu.Index
	camv := ugp.AddStruct("Camera", int(unsafe.Sizeof(Camera{})), 1, gpu.VertexShader)

	nvals := 1
	if vw.hasCube {
		nvals = 2
	}
	vgp.SetNValues(nvals)
	ugp.SetNValues(1)
	sy.Config()
	// sy.Config logs pipeline errors; probe explicitly so a broken
	// shader surfaces here instead of as blank frames later.
	if err := pl.Config(false); err != nil {
		sy.Release()
		return fmt.Errorf("view.Init: pipeline config failed: %w", err)
	}

	if vw.hasCube {
		nc := curve.CubeStripLen
		gpu.SetValueFrom(posv.Values.Values[cubeValue], vw.Curve.Cube)
		clrs := make([]float32, 0, nc*4)
		idxs := make([]uint32, nc)
		for i := range nc {
			clrs = append(clrs, cubeGray[0], cubeGray[1], cubeGray[2], cubeGray[3])
			idxs[i] = uint32(i)
		}
		gpu.SetValueFrom(clrv.Values.Values[cubeValue], clrs)
		gpu.SetValueFrom(idxv.Values.Values[cubeValue], idxs)
	}

	nv := vw.Curve.NumPoints + 1
	gpu.SetValueFrom(posv.Values.Values[vw.curveIndex], positions3(vw.Curve))
	gpu.SetValueFrom(clrv.Values.Values[vw.curveIndex], vw.Curve.Colors)
	idxs := make([]uint32, nv)
	for i := range nv {
		idxs[i] = uint32(i)
	}
	gpu.SetValueFrom(idxv.Values.Values[vw.curveIndex], idxs)

	vw.System = sy
	vw.Pipeline = pl
	vw.camVal = camv.Values.Values[0]
	vw.size = size
	vw.State = Ready
	return nil
}

// SetSize updates the render target after a window resize.
func (vw *Viewer) SetSize(size image.Point) {
	if size == vw.size {
		return
	}
	slog.Debug("view: render size changed", "size", size)
	vw.size = size
	if vw.State != Uninitialized {
		vw.System.SetSize(size)
	}
}

// Frame returns the camera matrices for the current animation angle.
func (vw *Viewer) Frame() Camera {
	return Camera{
		ModelView:  ModelView(vw.angle, vw.Curve.Center, vw.Curve.Scale),
		Projection: Projection(vw.size),
	}
}

// DrawFrame renders one frame: uploads the camera uniform for the
// current angle, clears color and depth, draws the bounding cube
// strip (3D only) and then the curve strip, presents, and advances
// the rotation angle. This is the only mutation of animation state.
func (vw *Viewer) DrawFrame() error {
	if vw.State == Uninitialized {
		return fmt.Errorf("view.DrawFrame: not initialized")
	}
	cam := vw.Frame()
	gpu.SetValueFrom(vw.camVal, []Camera{cam})

	rp, err := vw.System.BeginRenderPass()
	if errors.Log(err) != nil {
		return err
	}
	if err := vw.Pipeline.BindPipeline(rp); err != nil {
		return err
	}
	if vw.hasCube {
		vw.setCurrent(cubeValue)
		vw.Pipeline.BindDrawIndexed(rp)
	}
	vw.setCurrent(vw.curveIndex)
	vw.Pipeline.BindDrawIndexed(rp)
	rp.End()
	vw.System.EndRenderPass(rp)

	vw.angle += RotationStep
	vw.State = Animating
	return nil
}

// setCurrent selects the vertex value set for the next draw.
func (vw *Viewer) setCurrent(idx int) {
	vs := vw.System.Vars()
	vs.SetCurrentValue(gpu.VertexGroup, "Pos", idx)
	vs.SetCurrentValue(gpu.VertexGroup, "Color", idx)
	vs.SetCurrentValue(gpu.VertexGroup, "Index", idx)
}

// Animate runs the render loop, drawing one frame each time next
// returns true. The caller supplies the frame-request capability:
// the demo drives it from a display ticker and window event polling,
// tests drive it synchronously. Returns the first frame error,
// or nil when next stops the loop.
func (vw *Viewer) Animate(next func() bool) error {
	for next() {
		if err := vw.DrawFrame(); err != nil {
			return err
		}
	}
	return nil
}

// Release frees the GPU system. The render target itself is owned
// and released by the caller. The Viewer returns to Uninitialized
// and can be re-initialized on a new target.
func (vw *Viewer) Release() {
	if vw.State == Uninitialized {
		return
	}
	vw.System.Release()
	vw.System = nil
	vw.Pipeline = nil
	vw.camVal = nil
	vw.State = Uninitialized
}

// positions3 returns the curve position buffer as 3 floats per
// vertex: 2D curves are re-expanded with z = 0 because the line
// pipeline uses a single vec3 position attribute for both spaces.
func positions3(c *curve.Curve) []float32 {
	if c.Space == curve.ThreeD {
		return c.Positions
	}
	n := c.NumPoints + 1
	out := make([]float32, 0, n*3)
	for i := range n {
		out = append(out, c.Positions[i*2], c.Positions[i*2+1], 0)
	}
	return out
}
