package photons3d

var (
	Debug     = false // set to true for verbose debug output and outcome statistics
	PNG       = false // set to true to also save a 16-bit PNG of the film
	RAW       = false // set to true to also save the RAW film buffer
	GIF       = false // set to true to save an animated GIF with one frame per progressive round
	AlwaysIdx = false // set to true to always use the R-tree for nearest body calculations
	NeverIdx  = false // set to true to never use the R-tree for nearest body calculations
	// Compile time checks to ensure that the closed shape and material sets implement their interfaces
	_ Primitive = (*Plane)(nil)
	_ Primitive = (*Cylinder)(nil)
	_ Primitive = (*Ball)(nil)
	_ Shape     = (*Complement)(nil)
	_ Shape     = (*Union)(nil)
	_ Shape     = (*Intersection)(nil)
	_ Material  = Transparent{}
	_ Material  = Absorbing{}
	_ Material  = Lambertian{}
	_ Material  = LambertianCos{}
	_ Material  = Matted{}
	_ Material  = Reflecting{}
	_ Material  = Refracting{}
	_ Source    = (*PointSource)(nil)
	_ Source    = (*ConeSource)(nil)
)
