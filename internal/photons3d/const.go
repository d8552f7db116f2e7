package photons3d

type Real = float64

// Channel indices for readability.
const (
	ChR              = 0
	ChG              = 1
	ChB              = 2
	FilmResX         = 1080
	FilmResY         = 1080
	ProbeRays        = 100_000
	Spp              = 16 // sensor hits per pixel target
	Frames           = 1  // progressive snapshots (PPM rewrite / GIF frame per round)
	PPMOut           = "pic.ppm"
	GIFDelay         = 50 // 100ths of a second per frame
	Gamma            = 1.0
	MaxBounces       = 10
	IndexFromNBodies = 8 // minimum number of bounded bodies to use the R-tree, otherwise just iterate all bodies
	IndexMinChildren = 2
	IndexMaxChildren = 5
	// hot-loop constants reused across bounces
	Epsilon    = 1e-6 // nudge along the new direction after a surface interaction
	antipodal  = 1e-9 // 1+a·b threshold below which a and b are treated as opposite
	parallel   = 1e-15
	boundSlack = 1e-9
)
