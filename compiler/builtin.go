package compiler

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

// builtinCompiler builds the fixed-function representation: a glass BSDF
// configured straight from resolved constants and texture instances,
// wrapped in a generic material carrying optional displacement fields.
type builtinCompiler struct {
	asm  *scene.Assembly
	snap material.Snapshot
	name string
}

func (c *builtinCompiler) Compile() (*scene.Material, error) {
	materialParams := scene.NewParamArray()

	bsdfParams := scene.NewParamArray().Insert("mdf", "ggx")

	if err := c.resolveColor(bsdfParams, "surface_transmittance", c.snap.SurfaceColorTexmap, c.snap.SurfaceColor); err != nil {
		return nil, err
	}
	if err := c.resolveColor(bsdfParams, "reflection_tint", c.snap.ReflectionTintTexmap, c.snap.ReflectionTint); err != nil {
		return nil, err
	}
	if err := c.resolveColor(bsdfParams, "refraction_tint", c.snap.RefractionTintTexmap, c.snap.RefractionTint); err != nil {
		return nil, err
	}

	bsdfParams.Insert("ior", c.snap.IOR)

	if err := c.resolveFloat(bsdfParams, "roughness", c.snap.RoughnessTexmap, c.snap.Roughness/100.0); err != nil {
		return nil, err
	}

	// The anisotropy constant is handed to the BSDF unscaled; the shader
	// group path divides it by 100. Both behaviors are pinned by tests.
	if err := c.resolveFloat(bsdfParams, "anisotropic", c.snap.AnisotropyTexmap, c.snap.Anisotropy); err != nil {
		return nil, err
	}

	bsdfParams.Insert("volume_parameterization", "transmittance")

	if err := c.resolveColor(bsdfParams, "volume_transmittance", c.snap.VolumeColorTexmap, c.snap.VolumeColor); err != nil {
		return nil, err
	}

	bsdfParams.Insert("volume_transmittance_distance", c.snap.Scale)

	bsdfName := scene.MakeUniqueName(c.asm.BSDFs(), c.name+"_bsdf")
	if err := c.asm.BSDFs().Insert(scene.NewGlassBSDF(bsdfName, bsdfParams)); err != nil {
		return nil, err
	}
	materialParams.Insert("bsdf", bsdfName)

	if err := wireBuiltinDisplacement(c.asm, materialParams, c.snap); err != nil {
		return nil, err
	}

	return scene.NewGenericMaterial(c.name, materialParams), nil
}

// resolveColor binds param to the texture instance when a texture is
// bound, otherwise to a color constant named after the BSDF field.
func (c *builtinCompiler) resolveColor(params *scene.ParamArray, param string, tex material.Texmap, constant mgl32.Vec3) error {
	instName, err := insertTextureAndInstance(c.asm, tex, nil)
	if err != nil {
		return err
	}
	if instName != "" {
		params.Insert(param, instName)
		return nil
	}

	colorName, err := insertColor(c.asm, c.name+"_bsdf_"+param, constant)
	if err != nil {
		return err
	}
	params.Insert(param, colorName)
	return nil
}

// resolveFloat binds param to the texture instance when a texture is
// bound, otherwise to the literal scalar.
func (c *builtinCompiler) resolveFloat(params *scene.ParamArray, param string, tex material.Texmap, constant float32) error {
	instName, err := insertTextureAndInstance(c.asm, tex, nil)
	if err != nil {
		return err
	}
	if instName != "" {
		params.Insert(param, instName)
		return nil
	}

	params.Insert(param, constant)
	return nil
}
