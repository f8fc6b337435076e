// Package m4 is the 4x4 matrix algebra used for entity transforms and
// camera projection.
//
// A matrix is a 16-element row-major array that transforms row vectors
// placed on its left (p' = p × M), so translation lives in elements 12..14.
// The values are stored as mgl32.Mat4: mathgl reads the same memory as a
// column-major matrix for column vectors, which is the transpose of this
// convention, so every matrix built here can be handed to OpenGL as is.
//
// No function mutates its arguments.
package m4

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Identity returns the identity matrix.
func Identity() mgl32.Mat4 {
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that moves points by t.
func Translation(t mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t[0], t[1], t[2], 1,
	}
}

// XRotation returns a rotation of angle radians around the X axis.
func XRotation(angle float32) mgl32.Mat4 {
	c, s := sincos(angle)
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// YRotation returns a rotation of angle radians around the Y axis.
func YRotation(angle float32) mgl32.Mat4 {
	c, s := sincos(angle)
	return mgl32.Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// ZRotation returns a rotation of angle radians around the Z axis.
func ZRotation(angle float32) mgl32.Mat4 {
	c, s := sincos(angle)
	return mgl32.Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scaling returns a per-axis scale matrix.
func Scaling(s mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// Multiply returns the product a × b.
func Multiply(a, b mgl32.Mat4) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			m[i*4+j] = sum
		}
	}
	return m
}

// Translate, XRotate, YRotate, ZRotate and Scale append one transform to m:
// each is Multiply(m, <matrix>(arg)).
func Translate(m mgl32.Mat4, t mgl32.Vec3) mgl32.Mat4 { return Multiply(m, Translation(t)) }

func XRotate(m mgl32.Mat4, angle float32) mgl32.Mat4 { return Multiply(m, XRotation(angle)) }

func YRotate(m mgl32.Mat4, angle float32) mgl32.Mat4 { return Multiply(m, YRotation(angle)) }

func ZRotate(m mgl32.Mat4, angle float32) mgl32.Mat4 { return Multiply(m, ZRotation(angle)) }

func Scale(m mgl32.Mat4, s mgl32.Vec3) mgl32.Mat4 { return Multiply(m, Scaling(s)) }

// Perspective returns a perspective projection for a vertical field of view
// given in degrees. near and far must differ.
func Perspective(fovDegrees, aspect, near, far float32) mgl32.Mat4 {
	fov := float64(mgl32.DegToRad(fovDegrees))
	f := float32(math.Tan(math.Pi*0.5 - 0.5*fov))
	rangeInv := 1 / (near - far)

	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) * rangeInv, -1,
		0, 0, near * far * rangeInv * 2, 0,
	}
}

// Orthographic returns an orthographic projection. Passing bottom > top
// flips Y so that screen row 0 is at the top.
func Orthographic(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 2 / (near - far), 0,
		(left + right) / (left - right),
		(bottom + top) / (bottom - top),
		(near + far) / (near - far),
		1,
	}
}

// Project maps pixel coordinates (origin top-left) of a width×height screen
// with the given depth range onto clip space.
func Project(m mgl32.Mat4, width, height, depth float32) mgl32.Mat4 {
	return Multiply(m, Orthographic(0, width, height, 0, depth, -depth))
}

// Inverse returns the inverse of m using the closed-form adjugate.
//
// The result is not guarded: a singular m (zero determinant, e.g. a
// projection built with near == far) yields Inf/NaN elements which will
// poison anything downstream. Check Determinant first when m may be
// degenerate.
func Inverse(m mgl32.Mat4) mgl32.Mat4 {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	tmp0 := m22 * m33
	tmp1 := m32 * m23
	tmp2 := m12 * m33
	tmp3 := m32 * m13
	tmp4 := m12 * m23
	tmp5 := m22 * m13
	tmp6 := m02 * m33
	tmp7 := m32 * m03
	tmp8 := m02 * m23
	tmp9 := m22 * m03
	tmp10 := m02 * m13
	tmp11 := m12 * m03
	tmp12 := m20 * m31
	tmp13 := m30 * m21
	tmp14 := m10 * m31
	tmp15 := m30 * m11
	tmp16 := m10 * m21
	tmp17 := m20 * m11
	tmp18 := m00 * m31
	tmp19 := m30 * m01
	tmp20 := m00 * m21
	tmp21 := m20 * m01
	tmp22 := m00 * m11
	tmp23 := m10 * m01

	t0 := (tmp0*m11 + tmp3*m21 + tmp4*m31) - (tmp1*m11 + tmp2*m21 + tmp5*m31)
	t1 := (tmp1*m01 + tmp6*m21 + tmp9*m31) - (tmp0*m01 + tmp7*m21 + tmp8*m31)
	t2 := (tmp2*m01 + tmp7*m11 + tmp10*m31) - (tmp3*m01 + tmp6*m11 + tmp11*m31)
	t3 := (tmp5*m01 + tmp8*m11 + tmp11*m21) - (tmp4*m01 + tmp9*m11 + tmp10*m21)

	d := 1 / (m00*t0 + m10*t1 + m20*t2 + m30*t3)

	return mgl32.Mat4{
		d * t0,
		d * t1,
		d * t2,
		d * t3,
		d * ((tmp1*m10 + tmp2*m20 + tmp5*m30) - (tmp0*m10 + tmp3*m20 + tmp4*m30)),
		d * ((tmp0*m00 + tmp7*m20 + tmp8*m30) - (tmp1*m00 + tmp6*m20 + tmp9*m30)),
		d * ((tmp3*m00 + tmp6*m10 + tmp11*m30) - (tmp2*m00 + tmp7*m10 + tmp10*m30)),
		d * ((tmp4*m00 + tmp9*m10 + tmp10*m20) - (tmp5*m00 + tmp8*m10 + tmp11*m20)),
		d * ((tmp12*m13 + tmp15*m23 + tmp16*m33) - (tmp13*m13 + tmp14*m23 + tmp17*m33)),
		d * ((tmp13*m03 + tmp18*m23 + tmp21*m33) - (tmp12*m03 + tmp19*m23 + tmp20*m33)),
		d * ((tmp14*m03 + tmp19*m13 + tmp22*m33) - (tmp15*m03 + tmp18*m13 + tmp23*m33)),
		d * ((tmp17*m03 + tmp20*m13 + tmp23*m23) - (tmp16*m03 + tmp21*m13 + tmp22*m23)),
		d * ((tmp14*m22 + tmp17*m32 + tmp13*m12) - (tmp16*m32 + tmp12*m12 + tmp15*m22)),
		d * ((tmp20*m32 + tmp12*m02 + tmp19*m22) - (tmp18*m22 + tmp21*m32 + tmp13*m02)),
		d * ((tmp18*m12 + tmp23*m32 + tmp15*m02) - (tmp22*m32 + tmp14*m02 + tmp19*m12)),
		d * ((tmp22*m22 + tmp16*m02 + tmp21*m12) - (tmp20*m12 + tmp23*m22 + tmp17*m02)),
	}
}

// Determinant returns det(m). Transposition does not change it, so mathgl's
// reading of the layout gives the same value.
func Determinant(m mgl32.Mat4) float32 {
	return m.Det()
}

// TransformPoint applies m to the point p (w = 1) and returns the result
// after the perspective divide.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	var out [4]float32
	in := [4]float32{p[0], p[1], p[2], 1}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out[j] += in[i] * m[i*4+j]
		}
	}
	if out[3] != 1 && out[3] != 0 {
		return mgl32.Vec3{out[0] / out[3], out[1] / out[3], out[2] / out[3]}
	}
	return mgl32.Vec3{out[0], out[1], out[2]}
}

// Sprint formats m as four rows.
func Sprint(m mgl32.Mat4) string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "%g, %g, %g, %g,\n", m[i*4], m[i*4+1], m[i*4+2], m[i*4+3])
	}
	return sb.String()
}

func sincos(angle float32) (c, s float32) {
	sn, cs := math.Sincos(float64(angle))
	return float32(cs), float32(sn)
}
