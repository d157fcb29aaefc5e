package vector

import (
	"bytes"
	"fmt"

	"github.com/sogebu/LorentzArena/common/utils/number"
)

// Vector4 is a spacetime point, displacement or 4-velocity, with
// components ordered (t, x, y, z). Natural units, c = 1.
type Vector4 struct {
	t float64
	x float64
	y float64
	z float64
}

func MakeVector4(t float64, x float64, y float64, z float64) Vector4 {
	return Vector4{t, x, y, z}
}

// Returns a null Vector4
func MakeNullVector4() Vector4 {
	return MakeVector4(0, 0, 0, 0)
}

func (v Vector4) Get() (float64, float64, float64, float64) {
	return v.t, v.x, v.y, v.z
}

func (v Vector4) GetT() float64 {
	return v.t
}

func (v Vector4) GetX() float64 {
	return v.x
}

func (v Vector4) GetY() float64 {
	return v.y
}

func (v Vector4) GetZ() float64 {
	return v.z
}

func (v Vector4) MarshalJSON() ([]byte, error) {
	propfmt := "%.4f"
	buffer := bytes.NewBufferString("[")
	buffer.WriteString(fmt.Sprintf(propfmt, v.t))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.x))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.y))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.z))
	buffer.WriteString("]")
	return buffer.Bytes(), nil
}

func (v Vector4) MarshalJSONString() string {
	json, _ := v.MarshalJSON()
	return string(json)
}

func (a Vector4) Clone() Vector4 {
	return Vector4{
		t: a.t,
		x: a.x,
		y: a.y,
		z: a.z,
	}
}

func (a Vector4) Add(b Vector4) Vector4 {
	a.t += b.t
	a.x += b.x
	a.y += b.y
	a.z += b.z
	return a
}

func (a Vector4) Sub(b Vector4) Vector4 {
	a.t -= b.t
	a.x -= b.x
	a.y -= b.y
	a.z -= b.z
	return a
}

func (a Vector4) Scale(scale float64) Vector4 {
	a.t *= scale
	a.x *= scale
	a.y *= scale
	a.z *= scale
	return a
}

func (a Vector4) MultScalar(f float64) Vector4 {
	return a.Scale(f)
}

// MinkowskiDot is the spacetime inner product, signature (+,+,+,-).
// Indefinite: negative for timelike separations, zero for null ones.
func (a Vector4) MinkowskiDot(b Vector4) float64 {
	return a.x*b.x + a.y*b.y + a.z*b.z - a.t*b.t
}

// SpatialPart drops the time component.
func (a Vector4) SpatialPart() Vector3 {
	return MakeVector3(a.x, a.y, a.z)
}

func (a Vector4) IsNull() bool {
	return isZero(a.t) && isZero(a.x) && isZero(a.y) && isZero(a.z)
}

func (a Vector4) Equals(b Vector4) bool {
	return b.Sub(a).IsNull()
}

func (a Vector4) String() string {
	return "<Vector4(" + number.FloatToStr(a.t, 5) + ", " + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ", " + number.FloatToStr(a.z, 5) + ")>"
}
