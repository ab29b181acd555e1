package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/feitianyiren/appleseed-max/material"
)

// materialDef is the on-disk JSON description of a glass material. Every
// field is optional; absent fields keep their documented defaults.
type materialDef struct {
	Name string `json:"name"`

	SurfaceColor         *[3]float32 `json:"surface_color"`
	SurfaceColorTexmap   string      `json:"surface_color_texmap"`
	ReflectionTint       *[3]float32 `json:"reflection_tint"`
	ReflectionTintTexmap string      `json:"reflection_tint_texmap"`
	RefractionTint       *[3]float32 `json:"refraction_tint"`
	RefractionTintTexmap string      `json:"refraction_tint_texmap"`
	IOR                  *float32    `json:"ior"`
	Roughness            *float32    `json:"roughness"`
	RoughnessTexmap      string      `json:"roughness_texmap"`
	Anisotropy           *float32    `json:"anisotropy"`
	AnisotropyTexmap     string      `json:"anisotropy_texmap"`
	VolumeColor          *[3]float32 `json:"volume_color"`
	VolumeColorTexmap    string      `json:"volume_color_texmap"`
	Scale                *float32    `json:"scale"`
	BumpMethod           string      `json:"bump_method"`
	BumpTexmap           string      `json:"bump_texmap"`
	BumpAmount           *float32    `json:"bump_amount"`
	BumpUpVector         string      `json:"bump_up_vector"`
}

func loadDefinition(path string) (*materialDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def materialDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, err)
	}

	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &def, nil
}

// store converts the definition into an in-memory parameter store.
func (d *materialDef) store() (*material.TableStore, error) {
	s := material.NewTableStore()

	putColor := func(id material.ParamID, c *[3]float32) {
		if c != nil {
			s.PutColor(id, mgl32.Vec3(*c))
		}
	}
	putFloat := func(id material.ParamID, v *float32) {
		if v != nil {
			s.PutFloat(id, *v)
		}
	}
	putTexmap := func(id material.ParamID, filename string) {
		if filename != "" {
			s.PutTexmap(id, material.NewBitmapTex("", filename))
		}
	}

	putColor(material.ParamSurfaceColor, d.SurfaceColor)
	putTexmap(material.ParamSurfaceColorTexmap, d.SurfaceColorTexmap)
	putColor(material.ParamReflectionTint, d.ReflectionTint)
	putTexmap(material.ParamReflectionTintTexmap, d.ReflectionTintTexmap)
	putColor(material.ParamRefractionTint, d.RefractionTint)
	putTexmap(material.ParamRefractionTintTexmap, d.RefractionTintTexmap)
	putFloat(material.ParamIOR, d.IOR)
	putFloat(material.ParamRoughness, d.Roughness)
	putTexmap(material.ParamRoughnessTexmap, d.RoughnessTexmap)
	putFloat(material.ParamAnisotropy, d.Anisotropy)
	putTexmap(material.ParamAnisotropyTexmap, d.AnisotropyTexmap)
	putColor(material.ParamVolumeColor, d.VolumeColor)
	putTexmap(material.ParamVolumeColorTexmap, d.VolumeColorTexmap)
	putFloat(material.ParamScale, d.Scale)
	putTexmap(material.ParamBumpTexmap, d.BumpTexmap)
	putFloat(material.ParamBumpAmount, d.BumpAmount)

	switch d.BumpMethod {
	case "", "bump":
		s.PutInt(material.ParamBumpMethod, int(material.BumpMap))
	case "normal":
		s.PutInt(material.ParamBumpMethod, int(material.NormalMap))
	default:
		return nil, fmt.Errorf("unknown bump_method %q (want \"bump\" or \"normal\")", d.BumpMethod)
	}

	switch d.BumpUpVector {
	case "", "z":
		s.PutInt(material.ParamBumpUpVector, int(material.UpVectorZ))
	case "y":
		s.PutInt(material.ParamBumpUpVector, int(material.UpVectorY))
	default:
		return nil, fmt.Errorf("unknown bump_up_vector %q (want \"y\" or \"z\")", d.BumpUpVector)
	}

	return s, nil
}
