package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/feitianyiren/appleseed-max/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "glassmtl"
	app.Usage = "translate glass material definitions into renderer scene entities"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "translate material definitions into scene entities",
			Description: `
Load glass material definitions from JSON files, resolve each parameter to a
constant or a texture binding, and translate the result into renderer scene
entities: either a procedural shader group driving an OSL material, or (with
--builtin) a native glass BSDF wrapped in a generic material. The emitted
entities are dumped to stdout.`,
			ArgsUsage: "material1.json material2.json ...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "builtin",
					Usage: "use the fixed-function BSDF path instead of the shader-group path",
				},
				cli.Int64Flag{
					Name:  "time, t",
					Value: 0,
					Usage: "timeline position (in ticks) to resolve animated parameters at",
				},
			},
			Action: cmd.CompileMaterial,
		},
		{
			Name:      "show",
			Usage:     "print the resolved parameter snapshot of a material definition",
			ArgsUsage: "material.json",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "time, t",
					Value: 0,
					Usage: "timeline position (in ticks) to resolve animated parameters at",
				},
			},
			Action: cmd.ShowMaterial,
		},
	}

	app.Run(os.Args)
}
