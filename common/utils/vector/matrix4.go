package vector

import (
	"bytes"
	"fmt"
)

// Matrix4 is a 4x4 matrix over spacetime vectors, stored row-major with
// the time row/column first, matching the (t, x, y, z) component order
// of Vector4.
type Matrix4 struct {
	m [16]float64
}

func MakeMatrix4(els [16]float64) Matrix4 {
	return Matrix4{m: els}
}

// Returns the identity Matrix4
func MakeIdentityMatrix4() Matrix4 {
	return Matrix4{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

func (m Matrix4) At(row int, col int) float64 {
	return m.m[row*4+col]
}

// Apply is the standard matrix-vector product.
func (m Matrix4) Apply(v Vector4) Vector4 {
	t, x, y, z := v.Get()
	return MakeVector4(
		m.m[0]*t+m.m[1]*x+m.m[2]*y+m.m[3]*z,
		m.m[4]*t+m.m[5]*x+m.m[6]*y+m.m[7]*z,
		m.m[8]*t+m.m[9]*x+m.m[10]*y+m.m[11]*z,
		m.m[12]*t+m.m[13]*x+m.m[14]*y+m.m[15]*z,
	)
}

// Compose returns a·b; applying the result is applying b, then a.
func (a Matrix4) Compose(b Matrix4) Matrix4 {
	var res [16]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.m[row*4+k] * b.m[k*4+col]
			}
			res[row*4+col] = sum
		}
	}
	return Matrix4{m: res}
}

func (a Matrix4) Transpose() Matrix4 {
	var res [16]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[col*4+row] = a.m[row*4+col]
		}
	}
	return Matrix4{m: res}
}

func (a Matrix4) Equals(b Matrix4) bool {
	for i := 0; i < 16; i++ {
		if !isZero(a.m[i] - b.m[i]) {
			return false
		}
	}
	return true
}

func (a Matrix4) String() string {
	buffer := bytes.NewBufferString("<Matrix4(")
	for row := 0; row < 4; row++ {
		if row > 0 {
			buffer.WriteString("; ")
		}
		for col := 0; col < 4; col++ {
			if col > 0 {
				buffer.WriteString(", ")
			}
			buffer.WriteString(fmt.Sprintf("%.4f", a.m[row*4+col]))
		}
	}
	buffer.WriteString(")>")
	return buffer.String()
}
