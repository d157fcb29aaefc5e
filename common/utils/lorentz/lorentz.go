package lorentz

import (
	"github.com/sogebu/LorentzArena/common/utils/vector"
)

// BuildBoost builds the matrix transforming world-frame 4-vectors into
// the instantaneous rest frame of an object moving with proper velocity u.
//
// The inverse of this boost form is obtained by negating the velocity,
// see InverseBoost.
func BuildBoost(u vector.Vector3) vector.Matrix4 {
	r := u.MagSq()

	// Identity branch: the off-diagonal terms below divide by r.
	if r == 0 {
		return vector.MakeIdentityMatrix4()
	}

	gamma := u.Gamma()
	ux, uy, uz := u.Get()

	return vector.MakeMatrix4([16]float64{
		gamma, -ux, -uy, -uz,
		-ux, (gamma*ux*ux + uy*uy + uz*uz) / r, (gamma - 1) * ux * uy / r, (gamma - 1) * ux * uz / r,
		-uy, (gamma - 1) * ux * uy / r, (ux*ux + gamma*uy*uy + uz*uz) / r, (gamma - 1) * uy * uz / r,
		-uz, (gamma - 1) * ux * uz / r, (gamma - 1) * uy * uz / r, (ux*ux + uy*uy + gamma*uz*uz) / r,
	})
}

// InverseBoost transforms rest-frame 4-vectors back into the world frame.
func InverseBoost(u vector.Vector3) vector.Matrix4 {
	return BuildBoost(u.Scale(-1))
}
