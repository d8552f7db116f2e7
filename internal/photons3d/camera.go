package photons3d

import (
	"fmt"
	"math"
)

// Camera rig constants: a symmetric biconvex glass lens and a 6×6 sensor.
const (
	cameraLensRadius   = 15
	cameraLensIndex    = 2.5
	cameraLensAperture = 4
	cameraSensorHalf   = 3
)

// MakeCamera places a sensor at center looking along dir and a lens in front
// of it, positioned by the thin-lens equation so that objects at distance
// focus from the sensor are sharp. The sensor's A axis stays horizontal and
// its normal is parallel to dir.
func MakeCamera(center, dir Vec, focus Real) (*Sensor, *Body, error) {
	if dir.Len2() == 0 {
		return nil, nil, fmt.Errorf("camera direction must be non-zero")
	}
	dir = dir.Norm()
	f := 1 / ((cameraLensIndex - 1) * (2.0 / cameraLensRadius))
	disc := sqr(focus) - 4*focus*f
	if !(focus > 0) || disc < 0 {
		return nil, nil, fmt.Errorf("camera focus %g is closer than %g (four focal lengths)", focus, 4*f)
	}
	lensDist := (focus - math.Sqrt(disc)) / 2

	shape, err := MakeLens(center.Add(dir.Mul(lensDist)), dir, cameraLensRadius, cameraLensRadius, cameraLensAperture)
	if err != nil {
		return nil, nil, err
	}
	glass, err := NewRefracting(cameraLensIndex)
	if err != nil {
		return nil, nil, err
	}
	lens, err := NewBody("camera_lens", shape, glass)
	if err != nil {
		return nil, nil, err
	}

	horiz := dir.Sub(zAxis.Mul(dir.Dot(zAxis)))
	if horiz.Len2() < 1e-18 {
		return nil, nil, fmt.Errorf("camera direction %+v must not be vertical", dir)
	}
	// A: +Y turned to the heading; B: +Z tilted by the elevation
	a := Rotate(Vec{1, 0, 0}, horiz, Vec{0, cameraSensorHalf, 0})
	b := Rotate(horiz, dir, Vec{0, 0, cameraSensorHalf})
	sensor, err := NewSensor(center, a, b)
	if err != nil {
		return nil, nil, err
	}
	DebugLog("Created camera at %+v dir=%+v focus=%g lensDist=%g", center, dir, focus, lensDist)
	return sensor, lens, nil
}
