// Copyright (c) 2026, Paramviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paramviz/paramviz/curve"
)

func TestEvaluatorsInCallerSpace(t *testing.T) {
	for _, name := range Names() {
		ev, err := ByName(name)
		assert.NoError(t, err)
		for i := 0; i <= 100; i++ {
			tt := float32(i) / 100
			s := ev(tt)
			p := s.Point()
			for _, v := range []float32{p.X, p.Y, p.Z} {
				assert.GreaterOrEqual(t, v, float32(0), "%s at t=%g", name, tt)
				assert.LessOrEqual(t, v, float32(1), "%s at t=%g", name, tt)
			}
			c := s.Color()
			for _, v := range []float32{c.X, c.Y, c.Z, c.W} {
				assert.GreaterOrEqual(t, v, float32(0))
				assert.LessOrEqual(t, v, float32(1))
			}
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("klein-bottle")
	assert.Error(t, err)
}

func TestGenerateStock(t *testing.T) {
	ev, err := ByName("helix")
	assert.NoError(t, err)
	c, err := curve.Generate(curve.Fit, 500, ev, curve.ThreeD, false)
	assert.NoError(t, err)
	assert.Equal(t, 501*3, len(c.Positions))
}
