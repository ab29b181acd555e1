package cmd

import (
	"errors"
	"strings"

	"github.com/urfave/cli"

	"github.com/feitianyiren/appleseed-max/compiler"
	"github.com/feitianyiren/appleseed-max/material"
	"github.com/feitianyiren/appleseed-max/scene"
)

// CompileMaterial translates one or more JSON material definitions into
// renderer assemblies and dumps the emitted scene entities.
func CompileMaterial(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing material definition file")
	}

	useBuiltinMaps := ctx.Bool("builtin")
	t := material.Time(ctx.Int64("time"))

	for idx := 0; idx < ctx.NArg(); idx++ {
		defFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(defFile, ".json") {
			logger.Warningf("skipping unsupported file %s", defFile)
			continue
		}

		logger.Noticef("translating material definition: %s", defFile)
		asm, err := translateDefinition(defFile, useBuiltinMaps, t)
		if err != nil {
			return err
		}

		dumpAssembly(asm)
	}

	return nil
}

func translateDefinition(defFile string, useBuiltinMaps bool, t material.Time) (*scene.Assembly, error) {
	def, err := loadDefinition(defFile)
	if err != nil {
		return nil, err
	}

	store, err := def.store()
	if err != nil {
		return nil, err
	}

	mtl := material.NewGlassMtl(store)
	asm := scene.NewAssembly(def.Name + "_assembly")

	out, err := compiler.CreateMaterial(asm, mtl, def.Name, useBuiltinMaps, t)
	if err != nil {
		return nil, err
	}
	if err := asm.Materials().Insert(out); err != nil {
		return nil, err
	}

	return asm, nil
}
