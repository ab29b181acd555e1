package compiler

import (
	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

// oslCompiler builds the procedural representation: a shader group wiring
// texture-bound inputs through adapter layers into a glass shading layer,
// whose closure output feeds a closure-to-surface layer, registered as an
// OSL material.
type oslCompiler struct {
	asm  *scene.Assembly
	snap material.Snapshot
	name string
}

func (c *oslCompiler) Compile() (*scene.Material, error) {
	groupName := scene.MakeUniqueName(c.asm.ShaderGroups(), c.name+"_shader_group")
	group := scene.NewShaderGroup(groupName)

	connectColorTexture(group, c.name, "SurfaceTransmittance", c.snap.SurfaceColorTexmap, c.snap.SurfaceColor)
	connectColorTexture(group, c.name, "ReflectionTint", c.snap.ReflectionTintTexmap, c.snap.ReflectionTint)
	connectColorTexture(group, c.name, "RefractionTint", c.snap.RefractionTintTexmap, c.snap.RefractionTint)
	connectColorTexture(group, c.name, "VolumeTransmittance", c.snap.VolumeColorTexmap, c.snap.VolumeColor)
	connectFloatTexture(group, c.name, "Roughness", c.snap.RoughnessTexmap, c.snap.Roughness/100.0)
	connectFloatTexture(group, c.name, "Anisotropic", c.snap.AnisotropyTexmap, c.snap.Anisotropy/100.0)

	if c.snap.BumpTexmap != nil {
		switch c.snap.BumpMethod {
		case material.BumpMap:
			connectBumpMap(group, c.name, "Normal", c.snap.BumpTexmap, c.snap.BumpAmount)
		case material.NormalMap:
			connectNormalMap(group, c.name, "Normal", "Tn", c.snap.BumpTexmap, c.snap.BumpUpVector, c.snap.BumpAmount)
		}
	}

	// The glass layer carries every input as a literal expression as
	// well; adapter layers, where present, take precedence through their
	// connections. Validation and display tooling read the literals.
	group.AddShader("surface", "as_max_glass_material", c.name,
		scene.NewParamArray().
			Insert("SurfaceTransmittance", oslColor(c.snap.SurfaceColor)).
			Insert("ReflectionTint", oslColor(c.snap.ReflectionTint)).
			Insert("RefractionTint", oslColor(c.snap.RefractionTint)).
			Insert("VolumeTransmittance", oslColor(c.snap.VolumeColor)).
			Insert("Roughness", oslFloat(c.snap.Roughness/100.0)).
			Insert("Anisotropic", oslFloat(c.snap.Anisotropy/100.0)).
			Insert("Ior", oslFloat(c.snap.IOR)).
			Insert("VolumeTransmittanceDistance", oslFloat(c.snap.Scale)).
			Insert("Distribution", oslString("ggx")))

	closureName := c.name + "_closure2surface"
	group.AddShader("shader", "as_max_closure2surface", closureName, nil)
	group.AddConnection(c.name, "ClosureOut", closureName, "in_input")

	if err := c.asm.ShaderGroups().Insert(group); err != nil {
		return nil, err
	}

	return scene.NewOSLMaterial(c.name,
		scene.NewParamArray().Insert("osl_surface", groupName)), nil
}
