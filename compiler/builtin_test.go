package compiler

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

func translateBuiltin(t *testing.T, store *material.TableStore, name string) (*scene.Assembly, *scene.Material) {
	t.Helper()
	asm := scene.NewAssembly(name + "_assembly")
	mtl := material.NewGlassMtl(store)
	out, err := CreateMaterial(asm, mtl, name, true, 0)
	require.NoError(t, err)
	return asm, out
}

func TestBuiltinDefaultsEmitBSDFAndMaterial(t *testing.T) {
	asm, out := translateBuiltin(t, material.NewTableStore(), "glass1")

	require.Equal(t, 1, asm.BSDFs().Len())
	bsdf, ok := asm.BSDFs().Get("glass1_bsdf")
	require.True(t, ok)
	assert.Equal(t, "glass_bsdf", bsdf.Model())

	assert.Equal(t, "ggx", mustParam(t, bsdf.Params(), "mdf"))
	assert.Equal(t, float32(1.5), mustParam(t, bsdf.Params(), "ior"))
	assert.Equal(t, float32(0.0), mustParam(t, bsdf.Params(), "roughness"))
	assert.Equal(t, float32(0.0), mustParam(t, bsdf.Params(), "anisotropic"))
	assert.Equal(t, "transmittance", mustParam(t, bsdf.Params(), "volume_parameterization"))
	assert.Equal(t, float32(0.0), mustParam(t, bsdf.Params(), "volume_transmittance_distance"))

	// Untextured color slots become named color constants.
	for _, param := range []string{"surface_transmittance", "reflection_tint", "refraction_tint", "volume_transmittance"} {
		ref, ok := bsdf.Params().GetString(param)
		require.True(t, ok, "param %q", param)
		color, ok := asm.Colors().Get(ref)
		require.True(t, ok, "color %q", ref)
		assert.Equal(t, mgl32.Vec3{1, 1, 1}, color.Values())
	}

	assert.Equal(t, "generic_material", out.Model())
	assert.Equal(t, "glass1_bsdf", mustParam(t, out.Params(), "bsdf"))

	// No bump texture: no displacement fields.
	assert.False(t, out.Params().Has("displacement_method"))
	assert.False(t, out.Params().Has("displacement_map"))
	assert.False(t, out.Params().Has("bump_amplitude"))

	assert.Equal(t, 0, asm.Textures().Len())
	assert.Equal(t, 0, asm.TextureInstances().Len())
}

func TestBuiltinScalesRoughnessButNotAnisotropy(t *testing.T) {
	store := material.NewTableStore()
	store.PutFloat(material.ParamRoughness, 20.0)
	store.PutFloat(material.ParamAnisotropy, 0.5)
	asm, _ := translateBuiltin(t, store, "glass1")

	bsdf, _ := asm.BSDFs().Get("glass1_bsdf")
	assert.Equal(t, float32(0.2), mustParam(t, bsdf.Params(), "roughness"))

	// The anisotropy constant deliberately bypasses the /100 rescale on
	// this path, mirroring the shader-group/fixed-function asymmetry of
	// the host plugin.
	assert.Equal(t, float32(0.5), mustParam(t, bsdf.Params(), "anisotropic"))
}

func TestBuiltinTextureBeatsConstant(t *testing.T) {
	store := material.NewTableStore()
	store.PutColor(material.ParamSurfaceColor, mgl32.Vec3{0.9, 0.1, 0.1})
	store.PutTexmap(material.ParamSurfaceColorTexmap, material.NewBitmapTex("dirt", "maps/dirt.png"))
	asm, _ := translateBuiltin(t, store, "glass1")

	bsdf, _ := asm.BSDFs().Get("glass1_bsdf")
	ref, ok := bsdf.Params().GetString("surface_transmittance")
	require.True(t, ok)
	assert.Equal(t, "dirt_inst", ref)

	inst, ok := asm.TextureInstances().Get("dirt_inst")
	require.True(t, ok)
	assert.Equal(t, "dirt", inst.TextureName())

	tex, ok := asm.Textures().Get("dirt")
	require.True(t, ok)
	assert.Equal(t, "disk_texture_2d", tex.Model())
	filename, _ := tex.Params().GetString("filename")
	assert.Equal(t, "maps/dirt.png", filename)
	cs, _ := tex.Params().GetString("color_space")
	assert.Equal(t, "srgb", cs)

	// The constant is not emitted for the textured slot.
	assert.False(t, asm.Colors().Has("glass1_bsdf_surface_transmittance"))
	// The other slots still resolve to constants.
	assert.True(t, asm.Colors().Has("glass1_bsdf_reflection_tint"))
}

func TestBuiltinFloatTextureBeatsConstant(t *testing.T) {
	store := material.NewTableStore()
	store.PutFloat(material.ParamRoughness, 80.0)
	store.PutTexmap(material.ParamRoughnessTexmap, material.NewBitmapTex("rough", "maps/rough.png"))
	asm, _ := translateBuiltin(t, store, "glass1")

	bsdf, _ := asm.BSDFs().Get("glass1_bsdf")
	ref, ok := bsdf.Params().GetString("roughness")
	require.True(t, ok)
	assert.Equal(t, "rough_inst", ref)
}

func TestBuiltinBumpDisplacement(t *testing.T) {
	store := material.NewTableStore()
	store.PutTexmap(material.ParamBumpTexmap, material.NewBitmapTex("bump", "maps/bump.png"))
	store.PutInt(material.ParamBumpMethod, int(material.BumpMap))
	store.PutFloat(material.ParamBumpAmount, 50.0)
	asm, out := translateBuiltin(t, store, "glass1")

	assert.Equal(t, "bump", mustParam(t, out.Params(), "displacement_method"))
	assert.Equal(t, "bump_inst", mustParam(t, out.Params(), "displacement_map"))
	assert.Equal(t, float32(50.0), mustParam(t, out.Params(), "bump_amplitude"))
	assert.Equal(t, float32(0.5), mustParam(t, out.Params(), "bump_offset"))
	assert.False(t, out.Params().Has("normal_map_up"))

	// Height data is not visual color: the texture must be linear.
	tex, ok := asm.Textures().Get("bump")
	require.True(t, ok)
	cs, _ := tex.Params().GetString("color_space")
	assert.Equal(t, "linear_rgb", cs)
}

func TestBuiltinNormalDisplacement(t *testing.T) {
	store := material.NewTableStore()
	store.PutTexmap(material.ParamBumpTexmap, material.NewBitmapTex("nrm", "maps/nrm.png"))
	store.PutInt(material.ParamBumpMethod, int(material.NormalMap))
	store.PutInt(material.ParamBumpUpVector, int(material.UpVectorY))
	_, out := translateBuiltin(t, store, "glass1")

	assert.Equal(t, "normal", mustParam(t, out.Params(), "displacement_method"))
	assert.Equal(t, "y", mustParam(t, out.Params(), "normal_map_up"))
	assert.False(t, out.Params().Has("bump_amplitude"))
	assert.False(t, out.Params().Has("bump_offset"))
}

func TestBuiltinDefaultUpVectorIsZ(t *testing.T) {
	store := material.NewTableStore()
	store.PutTexmap(material.ParamBumpTexmap, material.NewBitmapTex("nrm", "maps/nrm.png"))
	store.PutInt(material.ParamBumpMethod, int(material.NormalMap))
	_, out := translateBuiltin(t, store, "glass1")

	assert.Equal(t, "z", mustParam(t, out.Params(), "normal_map_up"))
}

func TestBuiltinEntityNamesStayUnique(t *testing.T) {
	asm := scene.NewAssembly("asm")
	store := material.NewTableStore()
	store.PutTexmap(material.ParamSurfaceColorTexmap, material.NewBitmapTex("dirt", "maps/dirt.png"))

	for i := 0; i < 2; i++ {
		mtl := material.NewGlassMtl(store)
		mtl.Validity(0)
		c := &builtinCompiler{asm: asm, snap: mtl.Snapshot(), name: "glass1"}
		_, err := c.Compile()
		require.NoError(t, err)
	}

	assert.True(t, asm.BSDFs().Has("glass1_bsdf"))
	assert.True(t, asm.BSDFs().Has("glass1_bsdf_2"))
	assert.True(t, asm.Textures().Has("dirt"))
	assert.True(t, asm.Textures().Has("dirt_2"))
	assert.True(t, asm.Colors().Has("glass1_bsdf_reflection_tint"))
	assert.True(t, asm.Colors().Has("glass1_bsdf_reflection_tint_2"))
}
