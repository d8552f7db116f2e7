package photons3d

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Rotation in degrees for JSON (friendlier than radians).
type Rot3Deg struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	YZ Real `json:"yz"`
}

func (r Rot3Deg) Radians() Rot3 {
	const k = math.Pi / 180
	return Rot3{XY: r.XY * k, XZ: r.XZ * k, YZ: r.YZ * k}
}

// ShapeCfg is a node of a CSG tree. Type selects the node; only the fields it
// needs are read. Directions (normal, axis) are rotated by RotDeg.
type ShapeCfg struct {
	Type      string     `json:"type"`
	Point     Vec        `json:"point"`  // plane, cylinder
	Center    Vec        `json:"center"` // ball, lens, concaveLens, box
	Normal    Vec        `json:"normal"` // plane
	Axis      Vec        `json:"axis"`   // cylinder, lens, concaveLens
	Radius    Real       `json:"radius"` // ball, cylinder
	R1        Real       `json:"r1"`     // lens faces
	R2        Real       `json:"r2"`
	Aperture  Real       `json:"aperture"`
	Thickness Real       `json:"thickness"` // concaveLens
	Size      Vec        `json:"size"`      // box
	RotDeg    Rot3Deg    `json:"rotDeg"`
	Children  []ShapeCfg `json:"children,omitempty"` // complement, union, intersection
}

type MaterialCfg struct {
	Type     string `json:"type"`
	Exponent Real   `json:"exponent,omitempty"` // lambertianCos
	IOR      Real   `json:"ior,omitempty"`      // refracting
}

type BodyCfg struct {
	Name     string      `json:"name"`
	Shape    ShapeCfg    `json:"shape"`
	Material MaterialCfg `json:"material"`
}

type SensorCfg struct {
	Center Vec   `json:"center"`
	A      Vec   `json:"a"`
	B      Vec   `json:"b"`
	FlipX  *bool `json:"flipX,omitempty"`
	FlipY  *bool `json:"flipY,omitempty"` // default true
}

// CameraCfg replaces the sensor with a lens + sensor rig.
type CameraCfg struct {
	Center Vec  `json:"center"`
	Dir    Vec  `json:"dir"`
	Focus  Real `json:"focus"`
}

type MediumCfg struct {
	Density Real `json:"density"`
}

type SourceCfg struct {
	Type     string `json:"type"` // point (default) or cone
	Pos      Vec    `json:"pos"`
	Radius   Real   `json:"radius,omitempty"` // point
	Axis     Vec    `json:"axis"`             // cone
	AngleDeg Real   `json:"angleDeg"`         // cone half-angle
	Color    RGB    `json:"color"`
	Rays     int    `json:"rays,omitempty"` // fixed budget; 0 = estimate
}

type Config struct {
	FilmResX   int         `json:"filmResX"`
	FilmResY   int         `json:"filmResY"`
	ProbeRays  int         `json:"probeRays"`
	Spp        int         `json:"spp"`
	Frames     int         `json:"frames,omitempty"`
	MaxBounces int         `json:"maxBounces,omitempty"`
	PPMOut     string      `json:"ppmOut"`
	PNGOut     string      `json:"pngOut,omitempty"`
	GIFOut     string      `json:"gifOut,omitempty"`
	RAWOut     string      `json:"rawOut,omitempty"`
	GIFDelay   int         `json:"gifDelay,omitempty"`
	Gamma      Real        `json:"gamma,omitempty"`
	Sensor     *SensorCfg  `json:"sensor,omitempty"`
	Camera     *CameraCfg  `json:"camera,omitempty"`
	Medium     *MediumCfg  `json:"medium,omitempty"`
	Sources    []SourceCfg `json:"sources"`
	Bodies     []BodyCfg   `json:"bodies"`
}

// asShape keeps a failed primitive build from leaking a typed nil.
func asShape(p Shape, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates and constructs the shape tree.
func (sc ShapeCfg) Build() (Shape, error) {
	R := rotFromAngles(sc.RotDeg.Radians())
	children := func(minN, maxN int) ([]Shape, error) {
		n := len(sc.Children)
		if n < minN {
			return nil, fmt.Errorf("%s needs at least %d children, got %d", sc.Type, minN, n)
		}
		if maxN > 0 && n > maxN {
			return nil, fmt.Errorf("%s takes at most %d children, got %d", sc.Type, maxN, n)
		}
		out := make([]Shape, 0, n)
		for i, c := range sc.Children {
			s, err := c.Build()
			if err != nil {
				return nil, fmt.Errorf("child %d (%s): %w", i, c.Type, err)
			}
			out = append(out, s)
		}
		return out, nil
	}
	switch sc.Type {
	case "plane":
		return asShape(NewPlane(sc.Point, R.MulVec(sc.Normal)))
	case "cylinder":
		return asShape(NewCylinder(sc.Point, R.MulVec(sc.Axis), sc.Radius))
	case "ball":
		return asShape(NewBall(sc.Center, sc.Radius))
	case "lens":
		return MakeLens(sc.Center, R.MulVec(sc.Axis), sc.R1, sc.R2, sc.Aperture)
	case "concaveLens":
		return MakeConcaveLens(sc.Center, R.MulVec(sc.Axis), sc.R1, sc.R2, sc.Aperture, sc.Thickness)
	case "box":
		return makeOrientedBox(sc.Center, sc.Size, R)
	case "complement":
		cs, err := children(1, 1)
		if err != nil {
			return nil, err
		}
		return NewComplement(cs[0]), nil
	case "union":
		cs, err := children(2, 0)
		if err != nil {
			return nil, err
		}
		return UnionOf(cs[0], cs[1:]...), nil
	case "intersection":
		cs, err := children(2, 0)
		if err != nil {
			return nil, err
		}
		return IntersectionOf(cs[0], cs[1:]...), nil
	}
	return nil, fmt.Errorf("unknown shape type %q", sc.Type)
}

func (mc MaterialCfg) Build() (Material, error) {
	switch mc.Type {
	case "transparent":
		return Transparent{}, nil
	case "absorbing":
		return Absorbing{}, nil
	case "lambertian":
		return Lambertian{}, nil
	case "lambertianCos":
		m, err := NewLambertianCos(mc.Exponent)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "matted":
		return Matted{}, nil
	case "reflecting":
		return Reflecting{}, nil
	case "refracting":
		m, err := NewRefracting(mc.IOR)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("unknown material type %q", mc.Type)
}

func (bc BodyCfg) Build() (*Body, error) {
	s, err := bc.Shape.Build()
	if err != nil {
		return nil, err
	}
	m, err := bc.Material.Build()
	if err != nil {
		return nil, err
	}
	return NewBody(bc.Name, s, m)
}

func (sc SensorCfg) Build() (*Sensor, error) {
	s, err := NewSensor(sc.Center, sc.A, sc.B)
	if err != nil {
		return nil, err
	}
	if sc.FlipX != nil {
		s.FlipX = *sc.FlipX
	}
	if sc.FlipY != nil {
		s.FlipY = *sc.FlipY
	}
	return s, nil
}

func (sc SourceCfg) Build() (Source, error) {
	switch sc.Type {
	case "", "point":
		s, err := NewPointSource(sc.Pos, sc.Radius, sc.Color)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "cone":
		s, err := NewConeSource(sc.Pos, sc.Axis, sc.AngleDeg*math.Pi/180.0, sc.Color)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown source type %q", sc.Type)
}

// Build assembles the scene and the sources.
func (cfg *Config) Build() (*Scene, []Source, error) {
	var bodies []*Body
	for i, bc := range cfg.Bodies {
		b, err := bc.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("body %d (%s): %w", i, bc.Name, err)
		}
		bodies = append(bodies, b)
	}

	var sensor *Sensor
	switch {
	case cfg.Sensor != nil && cfg.Camera != nil:
		return nil, nil, errors.New("config has both a sensor and a camera")
	case cfg.Camera != nil:
		s, lens, err := MakeCamera(cfg.Camera.Center, cfg.Camera.Dir, cfg.Camera.Focus)
		if err != nil {
			return nil, nil, fmt.Errorf("camera: %w", err)
		}
		sensor = s
		bodies = append(bodies, lens)
	case cfg.Sensor != nil:
		s, err := cfg.Sensor.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("sensor: %w", err)
		}
		sensor = s
	default:
		return nil, nil, errors.New("config has no sensor or camera")
	}

	var medium *Medium
	if cfg.Medium != nil {
		m, err := NewMedium(cfg.Medium.Density)
		if err != nil {
			return nil, nil, err
		}
		medium = m
	}

	sources := make([]Source, 0, len(cfg.Sources))
	for i, sc := range cfg.Sources {
		s, err := sc.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("source %d: %w", i, err)
		}
		sources = append(sources, s)
	}

	scene, err := NewScene(bodies, sensor, medium, cfg.MaxBounces)
	if err != nil {
		return nil, nil, err
	}
	return scene, sources, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.FilmResX <= 0 {
		cfg.FilmResX = FilmResX
	}
	if cfg.FilmResY <= 0 {
		cfg.FilmResY = FilmResY
	}
	if cfg.ProbeRays <= 0 {
		cfg.ProbeRays = ProbeRays
	}
	if cfg.Spp <= 0 {
		cfg.Spp = Spp
	}
	if cfg.Frames <= 0 {
		cfg.Frames = Frames
	}
	if cfg.MaxBounces <= 0 {
		cfg.MaxBounces = MaxBounces
	}
	if cfg.PPMOut == "" {
		cfg.PPMOut = PPMOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("config has no sources")
	}
	DebugLog("Loaded config from %s: film=(%d, %d), probe=%d, SPP=%d, frames=%d, gamma=%f", path, cfg.FilmResX, cfg.FilmResY, cfg.ProbeRays, cfg.Spp, cfg.Frames, cfg.Gamma)
	return &cfg, nil
}
