package scene

import "fmt"

// Named is implemented by every entity kind held in a Container.
type Named interface {
	Name() string
}

// Container holds scene entities of one kind, keyed by unique name, in
// insertion order. The assembly is a shared mutable resource: callers
// must serialize concurrent mutation themselves.
type Container[T Named] struct {
	order []string
	items map[string]T
}

func newContainer[T Named]() *Container[T] {
	return &Container[T]{items: make(map[string]T)}
}

// Insert adds an entity. Duplicate names are a programmer error surfaced
// as an error so tests can catch broken unique-naming.
func (c *Container[T]) Insert(item T) error {
	name := item.Name()
	if _, exists := c.items[name]; exists {
		return fmt.Errorf("duplicate entity name %q", name)
	}
	c.order = append(c.order, name)
	c.items[name] = item
	return nil
}

// Get returns the entity registered under name.
func (c *Container[T]) Get(name string) (T, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Has reports whether an entity is registered under name.
func (c *Container[T]) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// List returns the entities in insertion order.
func (c *Container[T]) List() []T {
	out := make([]T, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

func (c *Container[T]) Len() int {
	return len(c.order)
}

// NameSet is the read side of a Container used for unique-name probing.
type NameSet interface {
	Has(name string) bool
}

// MakeUniqueName returns base if it is free in names, otherwise the first
// free name of the form base_2, base_3, ... Naming is deterministic: the
// same container state and base always produce the same name.
func MakeUniqueName(names NameSet, base string) string {
	if !names.Has(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !names.Has(candidate) {
			return candidate
		}
	}
}

// Assembly is the scene container the translator emits entities into. It
// mirrors the renderer's assembly: one named container per entity kind.
type Assembly struct {
	name             string
	colors           *Container[*ColorEntity]
	textures         *Container[*Texture]
	textureInstances *Container[*TextureInstance]
	bsdfs            *Container[*BSDF]
	shaderGroups     *Container[*ShaderGroup]
	materials        *Container[*Material]
}

func NewAssembly(name string) *Assembly {
	return &Assembly{
		name:             name,
		colors:           newContainer[*ColorEntity](),
		textures:         newContainer[*Texture](),
		textureInstances: newContainer[*TextureInstance](),
		bsdfs:            newContainer[*BSDF](),
		shaderGroups:     newContainer[*ShaderGroup](),
		materials:        newContainer[*Material](),
	}
}

func (a *Assembly) Name() string { return a.name }

func (a *Assembly) Colors() *Container[*ColorEntity] { return a.colors }

func (a *Assembly) Textures() *Container[*Texture] { return a.textures }

func (a *Assembly) TextureInstances() *Container[*TextureInstance] { return a.textureInstances }

func (a *Assembly) BSDFs() *Container[*BSDF] { return a.bsdfs }

func (a *Assembly) ShaderGroups() *Container[*ShaderGroup] { return a.shaderGroups }

func (a *Assembly) Materials() *Container[*Material] { return a.materials }
