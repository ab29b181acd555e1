package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/feitianyiren/appleseed-max/scene"
)

// dumpAssembly prints every entity emitted into the assembly, in
// registration order, as tables on stdout.
func dumpAssembly(asm *scene.Assembly) {
	fmt.Printf("\nassembly %q\n\n", asm.Name())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "Name", "Model", "Parameters"})
	table.SetAutoWrapText(false)

	for _, c := range asm.Colors().List() {
		v := c.Values()
		table.Append([]string{"color", c.Name(), "", fmt.Sprintf("rgb=%g %g %g", v[0], v[1], v[2])})
	}
	for _, t := range asm.Textures().List() {
		table.Append([]string{"texture", t.Name(), t.Model(), t.Params().String()})
	}
	for _, ti := range asm.TextureInstances().List() {
		table.Append([]string{"texture_instance", ti.Name(), "", "texture=" + ti.TextureName()})
	}
	for _, b := range asm.BSDFs().List() {
		table.Append([]string{"bsdf", b.Name(), b.Model(), b.Params().String()})
	}
	for _, g := range asm.ShaderGroups().List() {
		table.Append([]string{"shader_group", g.Name(), "", fmt.Sprintf("%d layers, %d connections", len(g.Shaders()), len(g.Connections()))})
	}
	for _, m := range asm.Materials().List() {
		table.Append([]string{"material", m.Name(), m.Model(), m.Params().String()})
	}
	table.Render()

	for _, g := range asm.ShaderGroups().List() {
		dumpShaderGroup(g)
	}
}

func dumpShaderGroup(g *scene.ShaderGroup) {
	fmt.Printf("\nshader group %q\n\n", g.Name())

	layers := tablewriter.NewWriter(os.Stdout)
	layers.SetHeader([]string{"Type", "Shader", "Layer", "Parameters"})
	layers.SetAutoWrapText(false)
	for _, s := range g.Shaders() {
		layers.Append([]string{s.Type, s.Shader, s.Layer, s.Params.String()})
	}
	layers.Render()

	if len(g.Connections()) == 0 {
		return
	}

	conns := tablewriter.NewWriter(os.Stdout)
	conns.SetHeader([]string{"Source", "Destination"})
	for _, c := range g.Connections() {
		conns.Append([]string{c.SrcLayer + "." + c.SrcParam, c.DstLayer + "." + c.DstParam})
	}
	conns.Render()
}
