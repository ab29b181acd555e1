package material

import "github.com/go-gl/mathgl/mgl32"

// Snapshot holds the time-resolved values of every glass material slot.
// Texmap fields are nil when no texture is bound; the constant next to a
// texture slot is retained as the fallback operand and for viewport
// display.
type Snapshot struct {
	SurfaceColor         mgl32.Vec3
	SurfaceColorTexmap   Texmap
	ReflectionTint       mgl32.Vec3
	ReflectionTintTexmap Texmap
	RefractionTint       mgl32.Vec3
	RefractionTintTexmap Texmap
	IOR                  float32
	Roughness            float32
	RoughnessTexmap      Texmap
	Anisotropy           float32
	AnisotropyTexmap     Texmap
	VolumeColor          mgl32.Vec3
	VolumeColorTexmap    Texmap
	Scale                float32
	BumpMethod           BumpMethod
	BumpTexmap           Texmap
	BumpAmount           float32
	BumpUpVector         UpVector
}

// GlassMtl is the editable glass material. It keeps an interval-cached
// snapshot of the parameter store so that repeated translations within the
// cached validity interval never touch the store.
type GlassMtl struct {
	store          Store
	snap           Snapshot
	paramsValidity Interval
	onChange       func()
}

// NewGlassMtl creates a glass material bound to the given parameter store.
// The snapshot starts out at the documented defaults with an empty
// validity interval, so the first Update always resolves the store.
func NewGlassMtl(store Store) *GlassMtl {
	m := &GlassMtl{
		store: store,
		snap: Snapshot{
			SurfaceColor:   DefaultSurfaceColor,
			ReflectionTint: DefaultReflectionTint,
			RefractionTint: DefaultRefractionTint,
			IOR:            DefaultIOR,
			Roughness:      DefaultRoughness,
			Anisotropy:     DefaultAnisotropy,
			VolumeColor:    DefaultVolumeColor,
			Scale:          DefaultScale,
			BumpMethod:     DefaultBumpMethod,
			BumpAmount:     DefaultBumpAmount,
			BumpUpVector:   DefaultBumpUpVector,
		},
	}
	m.paramsValidity.SetEmpty()
	return m
}

// OnChange registers a callback invoked whenever a cache miss causes the
// snapshot to be re-resolved from the store. Dependents use it to drop
// derived state.
func (m *GlassMtl) OnChange(fn func()) {
	m.onChange = fn
}

// Snapshot returns a copy of the currently cached parameter values.
func (m *GlassMtl) Snapshot() Snapshot {
	return m.snap
}

// Update re-resolves the snapshot from the store if t falls outside the
// cached validity interval, then narrows valid by the snapshot's interval.
// A cache hit leaves the snapshot untouched and signals no change.
func (m *GlassMtl) Update(t Time, valid *Interval) {
	if !m.paramsValidity.InInterval(t) {
		m.paramsValidity.SetInfinite()

		m.snap.SurfaceColor = m.color(ParamSurfaceColor, t)
		m.snap.SurfaceColorTexmap = m.texmap(ParamSurfaceColorTexmap, t)

		m.snap.ReflectionTint = m.color(ParamReflectionTint, t)
		m.snap.ReflectionTintTexmap = m.texmap(ParamReflectionTintTexmap, t)

		m.snap.RefractionTint = m.color(ParamRefractionTint, t)
		m.snap.RefractionTintTexmap = m.texmap(ParamRefractionTintTexmap, t)

		m.snap.IOR = m.float(ParamIOR, t)

		m.snap.Roughness = m.float(ParamRoughness, t)
		m.snap.RoughnessTexmap = m.texmap(ParamRoughnessTexmap, t)

		m.snap.Anisotropy = m.float(ParamAnisotropy, t)
		m.snap.AnisotropyTexmap = m.texmap(ParamAnisotropyTexmap, t)

		m.snap.VolumeColor = m.color(ParamVolumeColor, t)
		m.snap.VolumeColorTexmap = m.texmap(ParamVolumeColorTexmap, t)

		m.snap.Scale = m.float(ParamScale, t)

		m.snap.BumpMethod = BumpMethod(m.enum(ParamBumpMethod, t))
		m.snap.BumpTexmap = m.texmap(ParamBumpTexmap, t)
		m.snap.BumpAmount = m.float(ParamBumpAmount, t)
		m.snap.BumpUpVector = UpVector(m.enum(ParamBumpUpVector, t))

		if m.onChange != nil {
			m.onChange()
		}
	}

	valid.Intersect(m.paramsValidity)
}

// Validity returns the interval around t over which the snapshot stays
// valid, refreshing it first if needed.
func (m *GlassMtl) Validity(t Time) Interval {
	valid := Forever()
	m.Update(t, &valid)
	return valid
}

// Reset discards the cached snapshot so the next Update resolves the
// store again.
func (m *GlassMtl) Reset() {
	m.paramsValidity.SetEmpty()
}

func (m *GlassMtl) color(id ParamID, t Time) mgl32.Vec3 {
	v, iv := m.store.Color(id, t)
	m.paramsValidity.Intersect(iv)
	return v
}

func (m *GlassMtl) float(id ParamID, t Time) float32 {
	v, iv := m.store.Float(id, t)
	m.paramsValidity.Intersect(iv)
	return v
}

func (m *GlassMtl) enum(id ParamID, t Time) int {
	v, iv := m.store.Int(id, t)
	m.paramsValidity.Intersect(iv)
	return v
}

func (m *GlassMtl) texmap(id ParamID, t Time) Texmap {
	v, iv := m.store.Texmap(id, t)
	m.paramsValidity.Intersect(iv)
	return v
}

//
// Legacy viewport shading approximations. These feed the host's fixed
// pipeline preview and play no part in the real shading computation.
//

// Ambient returns the viewport ambient color.
func (m *GlassMtl) Ambient() mgl32.Vec3 {
	return mgl32.Vec3{0.0, 0.0, 0.0}
}

// Diffuse returns the viewport diffuse color, approximated by the surface
// color.
func (m *GlassMtl) Diffuse() mgl32.Vec3 {
	return m.snap.SurfaceColor
}

// Specular returns the viewport specular color.
func (m *GlassMtl) Specular() mgl32.Vec3 {
	return mgl32.Vec3{0.0, 0.0, 0.0}
}

// Shininess returns the viewport shininess.
func (m *GlassMtl) Shininess() float32 {
	return 0.0
}

// ShinStr returns the viewport shininess strength.
func (m *GlassMtl) ShinStr() float32 {
	return 0.0
}

// Transparency approximates how see-through the glass appears, as the
// product of the HSV value channels of the surface color and the
// refraction tint.
func (m *GlassMtl) Transparency() float32 {
	return hsvValue(m.snap.SurfaceColor) * hsvValue(m.snap.RefractionTint)
}

// SetDiffuse writes the viewport diffuse color back to the surface color
// slot. This is the only two-way binding the material exposes.
func (m *GlassMtl) SetDiffuse(c mgl32.Vec3, t Time) {
	m.store.SetColor(ParamSurfaceColor, t, c)
	m.snap.SurfaceColor = c
}

// TwoSided reports that glass surfaces are shaded on both sides.
func (m *GlassMtl) TwoSided() bool {
	return true
}

// CanEmitLight reports whether the material can act as a light source.
func (m *GlassMtl) CanEmitLight() bool {
	return false
}

// hsvValue is the value (brightness) channel of the HSV decomposition.
func hsvValue(c mgl32.Vec3) float32 {
	v := c[0]
	if c[1] > v {
		v = c[1]
	}
	if c[2] > v {
		v = c[2]
	}
	return v
}
