package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene entity kinds produced by the material translator. Each entity has
// a unique name within its container, a model selecting the renderer
// implementation, and a ParamArray of configuration values.

// ColorEntity is a named RGB constant that parameters can reference by
// name.
type ColorEntity struct {
	name   string
	values mgl32.Vec3
}

func NewColor(name string, values mgl32.Vec3) *ColorEntity {
	return &ColorEntity{name: name, values: values}
}

func (c *ColorEntity) Name() string       { return c.name }
func (c *ColorEntity) Values() mgl32.Vec3 { return c.values }

// Texture is a registered texture source.
type Texture struct {
	name   string
	model  string
	params *ParamArray
}

func NewTexture(name, model string, params *ParamArray) *Texture {
	if params == nil {
		params = NewParamArray()
	}
	return &Texture{name: name, model: model, params: params}
}

func (t *Texture) Name() string        { return t.name }
func (t *Texture) Model() string       { return t.model }
func (t *Texture) Params() *ParamArray { return t.params }

// TextureInstance binds a Texture into the assembly; material and BSDF
// parameters reference the instance, not the texture itself.
type TextureInstance struct {
	name    string
	texture string
	params  *ParamArray
}

func NewTextureInstance(name, texture string, params *ParamArray) *TextureInstance {
	if params == nil {
		params = NewParamArray()
	}
	return &TextureInstance{name: name, texture: texture, params: params}
}

func (t *TextureInstance) Name() string        { return t.name }
func (t *TextureInstance) TextureName() string { return t.texture }
func (t *TextureInstance) Params() *ParamArray { return t.params }

// BSDF is a native reflectance model instance.
type BSDF struct {
	name   string
	model  string
	params *ParamArray
}

// NewGlassBSDF creates a glass reflectance/transmittance model.
func NewGlassBSDF(name string, params *ParamArray) *BSDF {
	if params == nil {
		params = NewParamArray()
	}
	return &BSDF{name: name, model: "glass_bsdf", params: params}
}

func (b *BSDF) Name() string        { return b.name }
func (b *BSDF) Model() string       { return b.model }
func (b *BSDF) Params() *ParamArray { return b.params }

// Material is the opaque handle handed back to the scene assembly.
type Material struct {
	name   string
	model  string
	params *ParamArray
}

// NewOSLMaterial creates a material whose surface shading is driven by a
// shader group.
func NewOSLMaterial(name string, params *ParamArray) *Material {
	if params == nil {
		params = NewParamArray()
	}
	return &Material{name: name, model: "osl_material", params: params}
}

// NewGenericMaterial creates a material driven by a native BSDF plus
// optional displacement parameters.
func NewGenericMaterial(name string, params *ParamArray) *Material {
	if params == nil {
		params = NewParamArray()
	}
	return &Material{name: name, model: "generic_material", params: params}
}

func (m *Material) Name() string        { return m.name }
func (m *Material) Model() string       { return m.model }
func (m *Material) Params() *ParamArray { return m.params }
