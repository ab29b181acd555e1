package scene

// Shader is one layer of a shader group: a shader invocation with literal
// parameter expressions attached.
type Shader struct {
	// Type is "surface" for the terminal shading layer, "shader" for
	// everything upstream of it.
	Type string

	// Shader names the compiled shader to instantiate.
	Shader string

	// Layer is the unique name of this layer inside the group;
	// connections address layers by this name.
	Layer string

	Params *ParamArray
}

// Connection wires an output parameter of one layer into an input
// parameter of another.
type Connection struct {
	SrcLayer string
	SrcParam string
	DstLayer string
	DstParam string
}

// ShaderGroup is a small dataflow graph of shader layers evaluated to
// produce surface shading inputs. Layers and connections are kept in
// insertion order; connections may reference layers added later, the
// renderer resolves them when the graph is bound.
type ShaderGroup struct {
	name        string
	shaders     []Shader
	connections []Connection
}

func NewShaderGroup(name string) *ShaderGroup {
	return &ShaderGroup{name: name}
}

func (g *ShaderGroup) Name() string { return g.name }

// AddShader appends a shader layer to the group.
func (g *ShaderGroup) AddShader(shaderType, shader, layer string, params *ParamArray) {
	if params == nil {
		params = NewParamArray()
	}
	g.shaders = append(g.shaders, Shader{
		Type:   shaderType,
		Shader: shader,
		Layer:  layer,
		Params: params,
	})
}

// AddConnection wires srcLayer.srcParam into dstLayer.dstParam.
func (g *ShaderGroup) AddConnection(srcLayer, srcParam, dstLayer, dstParam string) {
	g.connections = append(g.connections, Connection{
		SrcLayer: srcLayer,
		SrcParam: srcParam,
		DstLayer: dstLayer,
		DstParam: dstParam,
	})
}

// Shaders returns the layers in insertion order.
func (g *ShaderGroup) Shaders() []Shader {
	out := make([]Shader, len(g.shaders))
	copy(out, g.shaders)
	return out
}

// Connections returns the connections in insertion order.
func (g *ShaderGroup) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

// FindLayer returns the layer with the given name.
func (g *ShaderGroup) FindLayer(layer string) (Shader, bool) {
	for _, s := range g.shaders {
		if s.Layer == layer {
			return s, true
		}
	}
	return Shader{}, false
}

// ConnectionsInto returns every connection whose destination is the given
// layer.
func (g *ShaderGroup) ConnectionsInto(layer string) []Connection {
	var out []Connection
	for _, c := range g.connections {
		if c.DstLayer == layer {
			out = append(out, c)
		}
	}
	return out
}
