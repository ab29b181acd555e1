package compiler

import (
	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

//
// Bump and normal mapping. Both backends consume the same bump slot
// (texture, method, amount, up vector) but wire it differently: the
// shader-group path inserts perturbation layers feeding the glass layer's
// normal and tangent pins, the fixed-function path sets displacement
// fields on the material.
//

// connectBumpMap inserts a height-to-normal adapter driven by the bump
// texture and wires it into the glass layer's normal input.
func connectBumpMap(group *scene.ShaderGroup, mtlName, normalInput string, tex material.Texmap, amount float32) {
	texLayer := mtlName + "_bump_map_texture"
	group.AddShader("shader", "as_max_float_texture", texLayer,
		scene.NewParamArray().
			Insert("Filename", oslString(tex.Filename())))

	bumpLayer := mtlName + "_bump_map"
	group.AddShader("shader", "as_max_bump_map", bumpLayer,
		scene.NewParamArray().
			Insert("Amount", oslFloat(amount)))

	group.AddConnection(texLayer, "FloatOut", bumpLayer, "Height")
	group.AddConnection(bumpLayer, "NormalOut", mtlName, normalInput)
}

// connectNormalMap inserts a tangent-space normal adapter driven by the
// bump texture and wires it into the glass layer's normal and tangent
// inputs.
func connectNormalMap(group *scene.ShaderGroup, mtlName, normalInput, tangentInput string, tex material.Texmap, up material.UpVector, amount float32) {
	texLayer := mtlName + "_normal_map_texture"
	group.AddShader("shader", "as_max_color_texture", texLayer,
		scene.NewParamArray().
			Insert("Filename", oslString(tex.Filename())))

	normalLayer := mtlName + "_normal_map"
	group.AddShader("shader", "as_max_normal_map", normalLayer,
		scene.NewParamArray().
			Insert("Amount", oslFloat(amount)).
			Insert("UpVector", oslString(upVectorName(up))))

	group.AddConnection(texLayer, "ColorOut", normalLayer, "Color")
	group.AddConnection(normalLayer, "NormalOut", mtlName, normalInput)
	group.AddConnection(normalLayer, "TangentOut", mtlName, tangentInput)
}

// wireBuiltinDisplacement attaches displacement fields to a generic
// material's parameters. No-op when no bump texture is bound. The texture
// encodes height or normal data, not visual color, so its color space is
// forced to linear.
func wireBuiltinDisplacement(asm *scene.Assembly, materialParams *scene.ParamArray, snap material.Snapshot) error {
	instName, err := insertTextureAndInstance(
		asm,
		snap.BumpTexmap,
		scene.NewParamArray().Insert("color_space", "linear_rgb"))
	if err != nil {
		return err
	}
	if instName == "" {
		return nil
	}

	materialParams.Insert("displacement_map", instName)

	switch snap.BumpMethod {
	case material.BumpMap:
		materialParams.Insert("displacement_method", "bump")
		materialParams.Insert("bump_amplitude", snap.BumpAmount)
		materialParams.Insert("bump_offset", float32(0.5))
	case material.NormalMap:
		materialParams.Insert("displacement_method", "normal")
		materialParams.Insert("normal_map_up", upVectorName(snap.BumpUpVector))
	}
	return nil
}

func upVectorName(up material.UpVector) string {
	if up == material.UpVectorY {
		return "y"
	}
	return "z"
}
