package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feitianyiren/appleseed-max/material"
)

func writeDefinition(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefinitionDefaultsNameToFile(t *testing.T) {
	path := writeDefinition(t, "wine_glass.json", `{"ior": 1.52}`)

	def, err := loadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "wine_glass", def.Name)
	require.NotNil(t, def.IOR)
	assert.Equal(t, float32(1.52), *def.IOR)
}

func TestDefinitionStoreOnlySetsPresentFields(t *testing.T) {
	path := writeDefinition(t, "glass.json", `{
		"surface_color": [0.5, 0.5, 1.0],
		"roughness": 20,
		"bump_texmap": "maps/bump.png",
		"bump_method": "normal",
		"bump_up_vector": "y"
	}`)

	def, err := loadDefinition(path)
	require.NoError(t, err)

	store, err := def.store()
	require.NoError(t, err)

	c, _ := store.Color(material.ParamSurfaceColor, 0)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 1.0}, c)

	r, _ := store.Float(material.ParamRoughness, 0)
	assert.Equal(t, float32(20.0), r)

	// Absent fields keep their defaults.
	ior, _ := store.Float(material.ParamIOR, 0)
	assert.Equal(t, material.DefaultIOR, ior)

	tex, _ := store.Texmap(material.ParamBumpTexmap, 0)
	require.NotNil(t, tex)
	assert.Equal(t, "maps/bump.png", tex.Filename())

	method, _ := store.Int(material.ParamBumpMethod, 0)
	assert.Equal(t, int(material.NormalMap), method)
	up, _ := store.Int(material.ParamBumpUpVector, 0)
	assert.Equal(t, int(material.UpVectorY), up)
}

func TestDefinitionStoreRejectsBadEnums(t *testing.T) {
	def := &materialDef{BumpMethod: "displace"}
	_, err := def.store()
	assert.Error(t, err)

	def = &materialDef{BumpUpVector: "x"}
	_, err = def.store()
	assert.Error(t, err)
}

func TestTranslateDefinitionEndToEnd(t *testing.T) {
	path := writeDefinition(t, "glass.json", `{
		"name": "glass1",
		"roughness": 20,
		"bump_texmap": "maps/bump.png",
		"bump_amount": 50
	}`)

	asm, err := translateDefinition(path, true, 0)
	require.NoError(t, err)

	bsdf, ok := asm.BSDFs().Get("glass1_bsdf")
	require.True(t, ok)
	r, _ := bsdf.Params().GetFloat("roughness")
	assert.Equal(t, float32(0.2), r)

	mat, ok := asm.Materials().Get("glass1")
	require.True(t, ok)
	method, _ := mat.Params().GetString("displacement_method")
	assert.Equal(t, "bump", method)
}
