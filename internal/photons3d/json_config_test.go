package photons3d

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRot3DegRadians(t *testing.T) {
	r := Rot3Deg{XY: 90, XZ: 180, YZ: -45}.Radians()
	if math.Abs(r.XY-math.Pi/2) > 1e-12 || math.Abs(r.XZ-math.Pi) > 1e-12 || math.Abs(r.YZ+math.Pi/4) > 1e-12 {
		t.Fatalf("degree->radian conversion wrong: %+v", r)
	}
}

func TestShapeCfgBuildPrimitives(t *testing.T) {
	const (
		unbounded = iota
		bounded
		anyBounds // rotated planes lose the axis-aligned box
	)
	cases := []struct {
		name   string
		cfg    ShapeCfg
		in     Vec
		out    Vec
		bounds int
	}{
		{"plane", ShapeCfg{Type: "plane", Point: Vec{0, 0, 1}, Normal: Vec{0, 0, 1}}, Vec{0, 0, 0}, Vec{0, 0, 2}, unbounded},
		{"cylinder", ShapeCfg{Type: "cylinder", Point: Vec{}, Axis: Vec{0, 0, 1}, Radius: 1}, Vec{0.5, 0, 9}, Vec{1.5, 0, 0}, unbounded},
		{"ball", ShapeCfg{Type: "ball", Center: Vec{1, 1, 1}, Radius: 1}, Vec{1, 1, 1.5}, Vec{1, 1, 2.5}, bounded},
		{"lens", ShapeCfg{Type: "lens", Center: Vec{}, Axis: Vec{0, 0, 1}, R1: 9, R2: 9, Aperture: 3}, Vec{}, Vec{0, 0, 1}, bounded},
		{"concaveLens", ShapeCfg{Type: "concaveLens", Center: Vec{}, Axis: Vec{0, 0, 1}, R1: 6, R2: 6, Aperture: 2, Thickness: 0.4}, Vec{1.9, 0, 0}, Vec{0, 0, 1}, bounded},
		{"box", ShapeCfg{Type: "box", Center: Vec{}, Size: Vec{4, 2, 2}}, Vec{1.5, 0, 0}, Vec{0, 1.5, 0}, bounded},
		{"rotated box", ShapeCfg{Type: "box", Center: Vec{}, Size: Vec{4, 2, 2}, RotDeg: Rot3Deg{XY: 90}}, Vec{0, 1.5, 0}, Vec{1.5, 0, 0}, anyBounds},
		{"rotated cylinder", ShapeCfg{Type: "cylinder", Point: Vec{}, Axis: Vec{0, 0, 1}, Radius: 1, RotDeg: Rot3Deg{YZ: 90}}, Vec{0, 0, 0.5}, Vec{0, 0, 5}, anyBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.cfg.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if !s.IsInside(tc.in, nil) {
				t.Fatalf("%+v should be inside", tc.in)
			}
			if s.IsInside(tc.out, nil) {
				t.Fatalf("%+v should be outside", tc.out)
			}
			if tc.bounds == anyBounds {
				return
			}
			if got := s.Bounds().Finite(); got != (tc.bounds == bounded) {
				t.Fatalf("finite bounds = %v, want %v", got, tc.bounds == bounded)
			}
		})
	}
}

func TestShapeCfgBuildCombinators(t *testing.T) {
	ball := func(x Real) ShapeCfg {
		return ShapeCfg{Type: "ball", Center: Vec{x, 0, 0}, Radius: 1}
	}
	u, err := ShapeCfg{Type: "union", Children: []ShapeCfg{ball(-0.5), ball(0.5)}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !u.IsInside(Vec{-1.2, 0, 0}, nil) || !u.IsInside(Vec{1.2, 0, 0}, nil) {
		t.Fatal("union should contain both lobes")
	}
	x, err := ShapeCfg{Type: "intersection", Children: []ShapeCfg{ball(-0.5), ball(0.5)}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if x.IsInside(Vec{-1.2, 0, 0}, nil) || !x.IsInside(Vec{}, nil) {
		t.Fatal("intersection should keep only the overlap")
	}
	c, err := ShapeCfg{Type: "complement", Children: []ShapeCfg{ball(0)}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if c.IsInside(Vec{}, nil) || !c.IsInside(Vec{5, 0, 0}, nil) {
		t.Fatal("complement should swap inside and outside")
	}
}

func TestShapeCfgBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  ShapeCfg
		msg  string
	}{
		{"unknown", ShapeCfg{Type: "torus"}, "unknown shape type"},
		{"ball radius", ShapeCfg{Type: "ball", Radius: 0}, ""},
		{"plane normal", ShapeCfg{Type: "plane"}, ""},
		{"cylinder axis", ShapeCfg{Type: "cylinder", Radius: 1}, ""},
		{"box size", ShapeCfg{Type: "box", Size: Vec{1, 0, 1}}, "box size"},
		{"lens aperture", ShapeCfg{Type: "lens", Axis: Vec{0, 0, 1}}, "aperture"},
		{"complement none", ShapeCfg{Type: "complement"}, "at least 1"},
		{"complement two", ShapeCfg{Type: "complement", Children: []ShapeCfg{
			{Type: "ball", Radius: 1}, {Type: "ball", Radius: 1},
		}}, "at most 1"},
		{"union one", ShapeCfg{Type: "union", Children: []ShapeCfg{{Type: "ball", Radius: 1}}}, "at least 2"},
		{"bad child", ShapeCfg{Type: "intersection", Children: []ShapeCfg{
			{Type: "ball", Radius: 1}, {Type: "cone"},
		}}, "child 1 (cone)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}

func TestMaterialCfgBuild(t *testing.T) {
	for _, typ := range []string{"transparent", "absorbing", "lambertian", "matted", "reflecting"} {
		m, err := MaterialCfg{Type: typ}.Build()
		if err != nil || m == nil {
			t.Fatalf("%s: %v", typ, err)
		}
	}
	m, err := MaterialCfg{Type: "lambertianCos", Exponent: 0.5}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if lc, ok := m.(LambertianCos); !ok || lc.Exponent != 0.5 {
		t.Fatalf("got %#v", m)
	}
	m, err = MaterialCfg{Type: "refracting", IOR: 1.5}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := m.(Refracting); !ok || r.Index != 1.5 {
		t.Fatalf("got %#v", m)
	}
	for _, bad := range []MaterialCfg{
		{Type: "glossy"},
		{Type: "refracting"},
		{Type: "lambertianCos", Exponent: -1},
	} {
		if _, err := bad.Build(); err == nil {
			t.Fatalf("%+v should fail", bad)
		}
	}
}

func TestSourceCfgBuild(t *testing.T) {
	s, err := SourceCfg{Pos: Vec{0, 0, 5}, Radius: 1, Color: RGB{1, 0, 0}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*PointSource); !ok {
		t.Fatalf("empty type should give a point source, got %T", s)
	}
	s, err = SourceCfg{Type: "cone", Axis: Vec{0, 0, -1}, AngleDeg: 90, Color: RGB{0, 1, 0}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	cs, ok := s.(*ConeSource)
	if !ok || math.Abs(cs.HalfAngle-math.Pi/2) > 1e-12 {
		t.Fatalf("got %#v", s)
	}
	if _, err := (SourceCfg{Type: "laser", Color: RGB{1, 1, 1}}).Build(); err == nil {
		t.Fatal("unknown source type should fail")
	}
}

func TestSensorCfgFlips(t *testing.T) {
	no := false
	s, err := SensorCfg{A: Vec{1, 0, 0}, B: Vec{0, 1, 0}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if s.FlipX || !s.FlipY {
		t.Fatalf("defaults: flipX=%v flipY=%v", s.FlipX, s.FlipY)
	}
	s, err = SensorCfg{A: Vec{1, 0, 0}, B: Vec{0, 1, 0}, FlipY: &no}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if s.FlipY {
		t.Fatal("flipY override ignored")
	}
}

func TestConfigBuild(t *testing.T) {
	base := func() *Config {
		return &Config{
			Sources: []SourceCfg{{Pos: Vec{0, 0, 10}, Radius: 1, Color: RGB{1, 1, 1}}},
			Bodies: []BodyCfg{{
				Name:     "ball",
				Shape:    ShapeCfg{Type: "ball", Center: Vec{0, 0, 5}, Radius: 1},
				Material: MaterialCfg{Type: "matted"},
			}},
		}
	}

	t.Run("sensor", func(t *testing.T) {
		cfg := base()
		cfg.Sensor = &SensorCfg{A: Vec{2, 0, 0}, B: Vec{0, 2, 0}}
		cfg.Medium = &MediumCfg{Density: 0.1}
		scene, sources, err := cfg.Build()
		if err != nil {
			t.Fatal(err)
		}
		if len(scene.Bodies) != 1 || len(sources) != 1 || scene.Medium == nil {
			t.Fatalf("bodies=%d sources=%d medium=%v", len(scene.Bodies), len(sources), scene.Medium)
		}
		if scene.MaxBounces != MaxBounces {
			t.Fatalf("maxBounces default = %d", scene.MaxBounces)
		}
	})

	t.Run("camera", func(t *testing.T) {
		cfg := base()
		cfg.Camera = &CameraCfg{Center: Vec{0, 0, -20}, Dir: Vec{1, 0, 1}, Focus: 25}
		scene, _, err := cfg.Build()
		if err != nil {
			t.Fatal(err)
		}
		if len(scene.Bodies) != 2 || scene.Bodies[1].Name != "camera_lens" {
			t.Fatalf("camera lens not appended: %d bodies", len(scene.Bodies))
		}
	})

	t.Run("errors", func(t *testing.T) {
		cases := map[string]func(*Config){
			"no sensor":   func(c *Config) {},
			"both":        func(c *Config) { c.Sensor = &SensorCfg{A: Vec{1, 0, 0}, B: Vec{0, 1, 0}}; c.Camera = &CameraCfg{Dir: Vec{1, 0, 0}, Focus: 30} },
			"bad camera":  func(c *Config) { c.Camera = &CameraCfg{Dir: Vec{1, 0, 0}, Focus: 1} },
			"bad sensor":  func(c *Config) { c.Sensor = &SensorCfg{A: Vec{1, 0, 0}, B: Vec{2, 0, 0}} },
			"bad medium":  func(c *Config) { c.Sensor = &SensorCfg{A: Vec{1, 0, 0}, B: Vec{0, 1, 0}}; c.Medium = &MediumCfg{Density: -1} },
			"bad body":    func(c *Config) { c.Sensor = &SensorCfg{A: Vec{1, 0, 0}, B: Vec{0, 1, 0}}; c.Bodies[0].Material.Type = "" },
			"black light": func(c *Config) { c.Sensor = &SensorCfg{A: Vec{1, 0, 0}, B: Vec{0, 1, 0}}; c.Sources[0].Color = RGB{} },
		}
		for name, mutate := range cases {
			cfg := base()
			mutate(cfg)
			if _, _, err := cfg.Build(); err == nil {
				t.Fatalf("%s: expected error", name)
			}
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	js := `{
  "sensor": {"center": {"x": 0, "y": 0, "z": 0}, "a": {"x": 1, "y": 0, "z": 0}, "b": {"x": 0, "y": 1, "z": 0}},
  "sources": [{"pos": {"x": 0, "y": 0, "z": 5}, "radius": 0.5, "color": {"r": 1, "g": 1, "b": 1}}],
  "bodies": []
}`
	if err := os.WriteFile(path, []byte(js), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilmResX != FilmResX || cfg.FilmResY != FilmResY || cfg.ProbeRays != ProbeRays || cfg.Spp != Spp {
		t.Fatalf("film/probe defaults not applied: %+v", cfg)
	}
	if cfg.Frames != Frames || cfg.MaxBounces != MaxBounces || cfg.PPMOut != PPMOut || cfg.GIFDelay != GIFDelay || cfg.Gamma != Gamma {
		t.Fatalf("output defaults not applied: %+v", cfg)
	}
	if cfg.Sources[0].Color != (RGB{1, 1, 1}) {
		t.Fatalf("source colour = %+v", cfg.Sources[0].Color)
	}

	if err := os.WriteFile(path, []byte(`{"sources": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("config without sources should fail")
	}
	if err := os.WriteFile(path, []byte(`{`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("malformed JSON should fail")
	}
	if _, err := loadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestShippedScenesBuild(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no scenes directory")
	}
	for _, p := range paths {
		t.Run(filepath.Base(p), func(t *testing.T) {
			cfg, err := loadConfig(p)
			if err != nil {
				t.Fatal(err)
			}
			scene, sources, err := cfg.Build()
			if err != nil {
				t.Fatal(err)
			}
			if len(sources) == 0 || scene.Sensor == nil {
				t.Fatal("scene without sources or sensor")
			}
		})
	}
}
