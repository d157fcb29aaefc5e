package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Algebra(t *testing.T) {
	a := MakeVector3(1, 2, 3)
	b := MakeVector3(4, -5, 6)

	assert.True(t, a.Add(b).Equals(MakeVector3(5, -3, 9)))
	assert.True(t, a.Sub(b).Equals(MakeVector3(-3, 7, -3)))
	assert.True(t, a.MultScalar(2).Equals(MakeVector3(2, 4, 6)))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.True(t, a.Cross(b).Equals(MakeVector3(27, 6, -13)))

	// Add/Sub do not mutate their receiver
	assert.True(t, a.Equals(MakeVector3(1, 2, 3)))
}

func TestVector3CrossIsOrthogonal(t *testing.T) {
	a := MakeVector3(1, 2, 3)
	b := MakeVector3(-2, 0.5, 4)

	c := a.Cross(b)

	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
}

func TestVector3Normalize(t *testing.T) {
	v := MakeVector3(3, 4, 0)
	assert.InDelta(t, 1.0, v.Normalize().Mag(), 1e-12)

	// Normalizing the null vector leaves it untouched
	assert.True(t, MakeNullVector3().Normalize().IsNull())
}

func TestVector3Limit(t *testing.T) {
	v := MakeVector3(3, 4, 0)

	assert.InDelta(t, 2.5, v.Limit(2.5).Mag(), 1e-12)
	assert.True(t, v.Limit(10).Equals(v))
}

func TestGamma(t *testing.T) {
	examples := []struct {
		Name     string
		U        Vector3
		Expected float64
	}{
		{
			Name:     "at rest",
			U:        MakeNullVector3(),
			Expected: 1.0,
		},
		{
			Name:     "unit proper velocity",
			U:        MakeVector3(1, 0, 0),
			Expected: math.Sqrt(2),
		},
		{
			Name:     "3-4-5 triangle",
			U:        MakeVector3(0, 3, 4),
			Expected: math.Sqrt(26),
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			assert.InDelta(t, example.Expected, example.U.Gamma(), 1e-12)
		})
	}
}

func TestGammaIsAlwaysAtLeastOne(t *testing.T) {
	// Proper velocity is unbounded, gamma is total: no magnitude is
	// ever rejected, and gamma never drops below 1.
	for _, mag := range []float64{0, 0.001, 1, 10, 1e6} {
		u := MakeVector3(mag, 0, 0)
		assert.GreaterOrEqual(t, u.Gamma(), 1.0)
	}
}

func TestVelocity4IsTimelikeNormalized(t *testing.T) {
	for _, u := range []Vector3{
		MakeNullVector3(),
		MakeVector3(1, 0, 0),
		MakeVector3(0.3, -2, 7),
		MakeVector3(100, 50, -25),
	} {
		v4 := u.Velocity4()
		assert.InDelta(t, -1.0, v4.MinkowskiDot(v4), 1e-9, u.String())
	}
}
