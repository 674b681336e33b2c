// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paramviz displays a parametric curve as a rotating
// line strip in a window.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/gpu"

	"github.com/paramviz/paramviz/curve"
	"github.com/paramviz/paramviz/shapes"
	"github.com/paramviz/paramviz/view"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Config is the configuration information for the paramviz cli.
type Config struct {

	// Curve is the name of the stock curve to display.
	Curve string `default:"lissajous"`

	// Points is the sample count N; N+1 points are drawn.
	Points int `default:"1000"`

	// Scale is the normalization policy: fit preserves the curve's
	// aspect ratio, stretch fills the display volume per axis,
	// anything else leaves the remapped coordinates as they are.
	Scale string `default:"fit"`

	// Space is 2D or 3D. 3D includes the bounding cube wireframe.
	Space string `default:"3D"`

	// FullView pads the extents by 5% per side before normalizing.
	FullView bool

	// Width of the window.
	Width int `default:"1024"`

	// Height of the window.
	Height int `default:"768"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("paramviz", "Displays a parametric curve as a rotating line strip.")
	cli.Run(opts, &Config{}, Run)
}

// Run generates the curve and renders it until the window closes.
func Run(c *Config) error { //cli:cmd -root
	eval, err := shapes.ByName(c.Curve)
	if err != nil {
		return err
	}
	cv, err := curve.Generate(curve.ScaleModeFromString(c.Scale), c.Points,
		eval, curve.SpaceFromString(c.Space), c.FullView)
	if err != nil {
		return err
	}

	slog.Info("paramviz: curve generated", "curve", c.Curve,
		"points", cv.NumPoints, "space", cv.Space, "scale", cv.Mode,
		"fullView", c.FullView)

	var resize func(size image.Point)
	size := image.Point{c.Width, c.Height}
	sp, terminate, pollEvents, size, err := gpu.GLFWCreateWindow(size, "paramviz", &resize)
	if err != nil {
		return fmt.Errorf("paramviz: no WebGPU surface available: %w", err)
	}
	gp := gpu.NewGPU(sp)
	sf := gpu.NewSurface(gp, sp, size, 4, gpu.Depth32)

	vw := view.NewViewer(cv)
	if err := vw.Init(gp, sf, size); err != nil {
		sf.Release()
		gp.Release()
		terminate()
		return err
	}
	resize = func(size image.Point) { vw.SetSize(size) }
	defer func() {
		vw.Release()
		sf.Release()
		gp.Release()
		terminate()
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	return vw.Animate(func() bool {
		<-ticker.C
		return pollEvents()
	})
}
