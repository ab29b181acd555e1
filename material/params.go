package material

import "github.com/go-gl/mathgl/mgl32"

// ParamID identifies one of the glass material's parameter slots in the
// host parameter store. The numeric values are part of the persisted
// format; reordering them breaks existing scene files.
type ParamID int

const (
	ParamSurfaceColor ParamID = iota
	ParamSurfaceColorTexmap
	ParamReflectionTint
	ParamReflectionTintTexmap
	ParamRefractionTint
	ParamRefractionTintTexmap
	ParamIOR
	ParamRoughness
	ParamRoughnessTexmap
	ParamAnisotropy
	ParamAnisotropyTexmap
	ParamVolumeColor
	ParamVolumeColorTexmap
	ParamScale
	ParamBumpMethod
	ParamBumpTexmap
	ParamBumpAmount
	ParamBumpUpVector

	paramCount // keep last
)

// BumpMethod selects how a bound bump texture perturbs the shading normal.
type BumpMethod int

const (
	// BumpMap interprets the texture as a height field.
	BumpMap BumpMethod = iota

	// NormalMap interprets the texture as a tangent-space normal map.
	NormalMap
)

// UpVector selects which texture axis maps to the surface-normal-facing
// axis when normal mapping.
type UpVector int

const (
	UpVectorY UpVector = iota
	UpVectorZ
)

// Parameter defaults. A snapshot carrying only these values is fully
// renderable: clear, smooth glass.
var (
	DefaultSurfaceColor           = mgl32.Vec3{1.0, 1.0, 1.0}
	DefaultReflectionTint         = mgl32.Vec3{1.0, 1.0, 1.0}
	DefaultRefractionTint         = mgl32.Vec3{1.0, 1.0, 1.0}
	DefaultIOR            float32 = 1.5
	DefaultRoughness      float32 = 0.0
	DefaultAnisotropy     float32 = 0.0
	DefaultVolumeColor            = mgl32.Vec3{1.0, 1.0, 1.0}
	DefaultScale          float32 = 0.0
	DefaultBumpMethod             = BumpMap
	DefaultBumpAmount     float32 = 1.0
	DefaultBumpUpVector           = UpVectorZ
)

// UI-layer value ranges for the scalar slots. Values are clamped to these
// ranges when written to a store; roughness and bump amount are expressed
// as percentages and rescaled by the compilers before use.
var paramRanges = map[ParamID][2]float32{
	ParamIOR:        {1.0, 4.0},
	ParamRoughness:  {0.0, 100.0},
	ParamAnisotropy: {-1.0, 1.0},
	ParamScale:      {0.0, 1000000.0},
	ParamBumpAmount: {0.0, 100.0},
}

// defaultColors and defaultFloats back the store getters for slots that
// have never been written.
var defaultColors = map[ParamID]mgl32.Vec3{
	ParamSurfaceColor:   DefaultSurfaceColor,
	ParamReflectionTint: DefaultReflectionTint,
	ParamRefractionTint: DefaultRefractionTint,
	ParamVolumeColor:    DefaultVolumeColor,
}

var defaultFloats = map[ParamID]float32{
	ParamIOR:        DefaultIOR,
	ParamRoughness:  DefaultRoughness,
	ParamAnisotropy: DefaultAnisotropy,
	ParamScale:      DefaultScale,
	ParamBumpAmount: DefaultBumpAmount,
}

var defaultInts = map[ParamID]int{
	ParamBumpMethod:   int(DefaultBumpMethod),
	ParamBumpUpVector: int(DefaultBumpUpVector),
}
