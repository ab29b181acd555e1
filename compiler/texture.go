package compiler

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

//
// Shader-group path. When a texture is bound to a slot, an adapter layer
// is inserted that carries both the texture lookup and the constant as a
// fallback operand, and its output is wired into the glass layer's input
// pin. With no texture bound the glass layer's own literal parameter
// stands and no layer is emitted.
//

// connectColorTexture wires a color slot into the glass layer.
func connectColorTexture(group *scene.ShaderGroup, mtlName, input string, tex material.Texmap, constant mgl32.Vec3) {
	if tex == nil {
		return
	}

	layer := mtlName + "_" + input + "_texture"
	group.AddShader("shader", "as_max_color_texture", layer,
		scene.NewParamArray().
			Insert("Filename", oslString(tex.Filename())).
			Insert("Color", oslColor(constant)))
	group.AddConnection(layer, "ColorOut", mtlName, input)
}

// connectFloatTexture wires a scalar slot into the glass layer. The
// constant must already be rescaled to the model's units.
func connectFloatTexture(group *scene.ShaderGroup, mtlName, input string, tex material.Texmap, constant float32) {
	if tex == nil {
		return
	}

	layer := mtlName + "_" + input + "_texture"
	group.AddShader("shader", "as_max_float_texture", layer,
		scene.NewParamArray().
			Insert("Filename", oslString(tex.Filename())).
			Insert("Float", oslFloat(constant)))
	group.AddConnection(layer, "FloatOut", mtlName, input)
}

//
// Fixed-function path. Textures become standalone texture + instance
// entities and parameters reference the instance by name; untextured
// color slots become named color constants.
//

// insertTextureAndInstance registers tex and a binding instance in the
// assembly and returns the instance name; empty when tex is nil. Extra
// params override the texture defaults (the bump path forces linear_rgb).
func insertTextureAndInstance(asm *scene.Assembly, tex material.Texmap, extra *scene.ParamArray) (string, error) {
	if tex == nil {
		return "", nil
	}

	params := scene.NewParamArray().
		Insert("filename", tex.Filename()).
		Insert("color_space", "srgb").
		Merge(extra)

	texName := scene.MakeUniqueName(asm.Textures(), tex.Name())
	if err := asm.Textures().Insert(scene.NewTexture(texName, "disk_texture_2d", params)); err != nil {
		return "", err
	}

	instName := scene.MakeUniqueName(asm.TextureInstances(), texName+"_inst")
	if err := asm.TextureInstances().Insert(scene.NewTextureInstance(instName, texName, nil)); err != nil {
		return "", err
	}
	return instName, nil
}

// insertColor registers a named color constant in the assembly and
// returns the name actually used.
func insertColor(asm *scene.Assembly, name string, c mgl32.Vec3) (string, error) {
	colorName := scene.MakeUniqueName(asm.Colors(), name)
	if err := asm.Colors().Insert(scene.NewColor(colorName, c)); err != nil {
		return "", err
	}
	return colorName, nil
}
