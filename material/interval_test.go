package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalZeroValueIsEmpty(t *testing.T) {
	var iv Interval
	assert.True(t, iv.IsEmpty())
	assert.False(t, iv.InInterval(0))
}

func TestIntervalForever(t *testing.T) {
	iv := Forever()
	assert.False(t, iv.IsEmpty())
	assert.True(t, iv.InInterval(0))
	assert.True(t, iv.InInterval(timeNegInf))
	assert.True(t, iv.InInterval(timePosInf))
}

func TestIntervalBounds(t *testing.T) {
	iv := NewInterval(10, 20)
	assert.True(t, iv.InInterval(10))
	assert.True(t, iv.InInterval(15))
	assert.True(t, iv.InInterval(20))
	assert.False(t, iv.InInterval(9))
	assert.False(t, iv.InInterval(21))

	assert.True(t, NewInterval(20, 10).IsEmpty())
}

func TestIntervalIntersect(t *testing.T) {
	specs := []struct {
		a, b, want Interval
	}{
		{Forever(), NewInterval(0, 50), NewInterval(0, 50)},
		{NewInterval(0, 50), NewInterval(25, 100), NewInterval(25, 50)},
		{NewInterval(0, 10), NewInterval(20, 30), EmptyInterval()},
		{NewInterval(0, 10), EmptyInterval(), EmptyInterval()},
		{EmptyInterval(), Forever(), EmptyInterval()},
	}

	for index, spec := range specs {
		got := spec.a
		got.Intersect(spec.b)
		assert.Equal(t, spec.want, got, "spec %d", index)
	}
}

func TestIntervalSetters(t *testing.T) {
	iv := NewInterval(1, 2)
	iv.SetEmpty()
	assert.True(t, iv.IsEmpty())

	iv.SetInfinite()
	assert.Equal(t, Forever(), iv)
}
