package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularMatrix is returned when a matrix has no usable inverse
var ErrSingularMatrix = errors.New("core: matrix is singular")

// Mat4 is a row-major 4x4 affine/projective transform.
// Element (row, col) is stored at index row*4+col. Points are treated as
// column vectors, so M.Mul(N) applies N first and then M.
type Mat4 [16]float64

// Identity4 returns the identity matrix
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 returns a translation matrix
func Translate4(offset Vec3) Mat4 {
	return Mat4{
		1, 0, 0, offset.X,
		0, 1, 0, offset.Y,
		0, 0, 1, offset.Z,
		0, 0, 0, 1,
	}
}

// Scale4 returns a non-uniform scale matrix
func Scale4(scale Vec3) Mat4 {
	return Mat4{
		scale.X, 0, 0, 0,
		0, scale.Y, 0, 0,
		0, 0, scale.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateY4 returns a rotation about the Y axis by the given angle in radians
func RotateY4(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// LookAt4 returns a right-handed view matrix placing eye at the origin and
// looking down -Z towards target.
func LookAt4(eye, target, up Vec3) Mat4 {
	f := target.Subtract(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective4 returns an OpenGL-style perspective projection that maps the
// view frustum to normalized device coordinates in [-1, 1]³.
// vfov is the vertical field of view in degrees.
func Perspective4(vfov, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(vfov*math.Pi/360.0)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

func (m Mat4) dense() *mat.Dense {
	data := make([]float64, 16)
	copy(data, m[:])
	return mat.NewDense(4, 4, data)
}

func mat4FromDense(d *mat.Dense) Mat4 {
	var m Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row*4+col] = d.At(row, col)
		}
	}
	return m
}

// At returns the element at (row, col)
func (m Mat4) At(row, col int) float64 {
	return m[row*4+col]
}

// Mul returns the matrix product m·other
func (m Mat4) Mul(other Mat4) Mat4 {
	var product mat.Dense
	product.Mul(m.dense(), other.dense())
	return mat4FromDense(&product)
}

// Inverse returns the inverse of m, or ErrSingularMatrix if m cannot be inverted
func (m Mat4) Inverse() (Mat4, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			// Ill-conditioned but invertible; gonum still computed a result.
			return mat4FromDense(&inv), nil
		}
		return Mat4{}, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}
	return mat4FromDense(&inv), nil
}

// TransformPoint applies m to the point p (w=1) including the perspective divide
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]
	z := m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	if w != 1 && w != 0 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// TransformVector applies the linear part of m to the direction v (w=0)
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// TransformNormal treats m as an inverse transform and applies its transpose
// to the normal n, which is how normals move under the forward transform.
// The result is not normalized.
func (m Mat4) TransformNormal(n Vec3) Vec3 {
	return Vec3{
		m[0]*n.X + m[4]*n.Y + m[8]*n.Z,
		m[1]*n.X + m[5]*n.Y + m[9]*n.Z,
		m[2]*n.X + m[6]*n.Y + m[10]*n.Z,
	}
}
