package scene

import "github.com/go-gl/mathgl/mgl32"

// Rotations take degrees, matching how every animation rate is expressed.

func RotateX(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(deg))
}

func RotateY(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

func RotateZ(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(deg))
}

func Translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v.X(), v.Y(), v.Z())
}

func Scale(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v.X(), v.Y(), v.Z())
}

func ScaleUniform(s float32) mgl32.Mat4 {
	return mgl32.Scale3D(s, s, s)
}

// Chain multiplies left to right, so the last matrix is applied first.
func Chain(ms ...mgl32.Mat4) mgl32.Mat4 {
	out := mgl32.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// Apply transforms a point.
func Apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
