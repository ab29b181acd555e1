package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/feitianyiren/appleseed-max/material"
)

// ShowMaterial resolves a material definition into a snapshot and prints
// the effective parameter values without translating anything.
func ShowMaterial(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing material definition file")
	}

	def, err := loadDefinition(ctx.Args().First())
	if err != nil {
		return err
	}

	store, err := def.store()
	if err != nil {
		return err
	}

	mtl := material.NewGlassMtl(store)
	t := material.Time(ctx.Int64("time"))
	mtl.Validity(t)
	snap := mtl.Snapshot()

	texName := func(tex material.Texmap) string {
		if tex == nil {
			return ""
		}
		return tex.Filename()
	}
	color := func(c [3]float32) string {
		return fmt.Sprintf("%g %g %g", c[0], c[1], c[2])
	}

	bumpMethod := "bump"
	if snap.BumpMethod == material.NormalMap {
		bumpMethod = "normal"
	}
	upVector := "z"
	if snap.BumpUpVector == material.UpVectorY {
		upVector = "y"
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Parameter", "Value", "Texture"})
	table.Append([]string{"surface_color", color(snap.SurfaceColor), texName(snap.SurfaceColorTexmap)})
	table.Append([]string{"reflection_tint", color(snap.ReflectionTint), texName(snap.ReflectionTintTexmap)})
	table.Append([]string{"refraction_tint", color(snap.RefractionTint), texName(snap.RefractionTintTexmap)})
	table.Append([]string{"ior", fmt.Sprintf("%g", snap.IOR), ""})
	table.Append([]string{"roughness", fmt.Sprintf("%g", snap.Roughness), texName(snap.RoughnessTexmap)})
	table.Append([]string{"anisotropy", fmt.Sprintf("%g", snap.Anisotropy), texName(snap.AnisotropyTexmap)})
	table.Append([]string{"volume_color", color(snap.VolumeColor), texName(snap.VolumeColorTexmap)})
	table.Append([]string{"scale", fmt.Sprintf("%g", snap.Scale), ""})
	table.Append([]string{"bump_method", bumpMethod, texName(snap.BumpTexmap)})
	table.Append([]string{"bump_amount", fmt.Sprintf("%g", snap.BumpAmount), ""})
	table.Append([]string{"bump_up_vector", upVector, ""})
	table.Render()

	fmt.Printf("\nviewport transparency: %g\n", mtl.Transparency())

	return nil
}
