// Package compiler translates an editable glass material into one of two
// renderer scene representations: a procedural shader group driving an
// OSL material, or a native glass BSDF wrapped in a generic material.
package compiler

import (
	"time"

	"github.com/feitianyiren/appleseed-max/log"
	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

var logger = log.New("material compiler")

// Compiler turns a resolved parameter snapshot into a material inside a
// target assembly. The two implementations differ in wiring topology, not
// just parameter values, so they share nothing but this contract.
type Compiler interface {
	Compile() (*scene.Material, error)
}

// CreateMaterial is the translation entry point. It refreshes the
// material's snapshot for t, then builds either the shader-group
// representation or, when useBuiltinMaps is set, the fixed-function BSDF
// representation. The flag is per-invocation and is not material state.
//
// The assembly is assumed to be exclusively owned for the duration of the
// call; emitted entities are fully wired before they are registered.
func CreateMaterial(asm *scene.Assembly, mtl *material.GlassMtl, name string, useBuiltinMaps bool, t material.Time) (*scene.Material, error) {
	valid := material.Forever()
	mtl.Update(t, &valid)

	var c Compiler
	if useBuiltinMaps {
		c = &builtinCompiler{asm: asm, snap: mtl.Snapshot(), name: name}
	} else {
		c = &oslCompiler{asm: asm, snap: mtl.Snapshot(), name: name}
	}

	start := time.Now()
	out, err := c.Compile()
	if err != nil {
		return nil, err
	}

	logger.Infof("translated material %q (builtin maps: %v) in %d us", name, useBuiltinMaps, time.Since(start).Microseconds())
	return out, nil
}
