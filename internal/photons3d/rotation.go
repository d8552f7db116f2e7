package photons3d

import "math"

// Angles in radians for rotations in coordinate planes.
type Rot3 struct {
	XY, XZ, YZ Real
}

func (r Rot3) isZero() bool { return r.XY == 0 && r.XZ == 0 && r.YZ == 0 }

func rotXY(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotYZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// Compose rotation from angles.
func rotFromAngles(r Rot3) Mat3 {
	R := I3()
	R = rotYZ(r.YZ).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotXY(r.XY).Mul(R)
	return R
}
