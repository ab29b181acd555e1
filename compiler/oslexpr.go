package compiler

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Literal shader parameters are attached to layers as typed OSL
// expression strings: "float 0.5", "color 1 1 1", "string ggx".

func oslFloat(v float32) string {
	return "float " + fmtFloat(v)
}

func oslColor(c mgl32.Vec3) string {
	return "color " + fmtFloat(c[0]) + " " + fmtFloat(c[1]) + " " + fmtFloat(c[2])
}

func oslString(s string) string {
	return "string " + s
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
