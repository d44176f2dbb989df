// Package config loads and saves flower generation requests as YAML
// documents. A request combines a floral diagram, per-component shape
// parameters, and an optional inflorescence block; omitted fields keep
// the values of the selected preset.
package config

// Request is a complete generation request.
type Request struct {
	Flower        Flower         `yaml:"flower"`
	Inflorescence *Inflorescence `yaml:"inflorescence,omitempty"`
	Logging       Logging        `yaml:"logging"`
}

// Flower holds the floral diagram and the shape parameters of every
// component type.
type Flower struct {
	// Preset seeds the defaults: lily, five-petal, or daisy.
	Preset string `yaml:"preset"`

	Diagram    Diagram    `yaml:"diagram"`
	Receptacle Receptacle `yaml:"receptacle"`
	Pistil     Pistil     `yaml:"pistil"`
	Stamen     Stamen     `yaml:"stamen"`
	Petal      Petal      `yaml:"petal"`
	Sepal      Petal      `yaml:"sepal"`
}

// Diagram is the arrangement plan: whorls per component type plus the
// jitter settings.
type Diagram struct {
	ReceptacleHeight float32 `yaml:"receptacle_height"`
	ReceptacleRadius float32 `yaml:"receptacle_radius"`

	Petals  []Whorl `yaml:"petals"`
	Stamens []Whorl `yaml:"stamens"`
	Pistils []Whorl `yaml:"pistils"`
	Sepals  []Whorl `yaml:"sepals,omitempty"`

	PositionJitter float32 `yaml:"position_jitter"`
	AngleJitter    float32 `yaml:"angle_jitter"`
	SizeJitter     float32 `yaml:"size_jitter"`
	Seed           uint64  `yaml:"seed"`
}

// Whorl is one ring of identical components.
type Whorl struct {
	Count          int     `yaml:"count"`
	Radius         float32 `yaml:"radius"`
	Height         float32 `yaml:"height"`
	Pattern        string  `yaml:"pattern"`
	RotationOffset float32 `yaml:"rotation_offset"`
	CustomOffset   float32 `yaml:"custom_offset"`
	TiltAngle      float32 `yaml:"tilt_angle"`
}

// Receptacle shapes the flower base.
type Receptacle struct {
	Height         float32    `yaml:"height"`
	BaseRadius     float32    `yaml:"base_radius"`
	BulgeRadius    float32    `yaml:"bulge_radius"`
	TopRadius      float32    `yaml:"top_radius"`
	BulgePosition  float32    `yaml:"bulge_position"`
	Segments       int        `yaml:"segments"`
	ProfileSamples int        `yaml:"profile_samples"`
	Color          [3]float32 `yaml:"color"`
}

// Pistil shapes the pistils.
type Pistil struct {
	Length       float32    `yaml:"length"`
	BaseRadius   float32    `yaml:"base_radius"`
	TipRadius    float32    `yaml:"tip_radius"`
	StigmaRadius float32    `yaml:"stigma_radius"`
	Segments     int        `yaml:"segments"`
	Droop        float32    `yaml:"droop"`
	Color        [3]float32 `yaml:"color"`
}

// Stamen shapes the stamens.
type Stamen struct {
	FilamentLength float32    `yaml:"filament_length"`
	FilamentRadius float32    `yaml:"filament_radius"`
	AntherLength   float32    `yaml:"anther_length"`
	AntherWidth    float32    `yaml:"anther_width"`
	AntherHeight   float32    `yaml:"anther_height"`
	Segments       int        `yaml:"segments"`
	Color          [3]float32 `yaml:"color"`
}

// Petal shapes petals and sepals.
type Petal struct {
	Length       float32    `yaml:"length"`
	Width        float32    `yaml:"width"`
	TipSharpness float32    `yaml:"tip_sharpness"`
	BaseWidth    float32    `yaml:"base_width"`
	Curl         float32    `yaml:"curl"`
	Twist        float32    `yaml:"twist"`
	LateralCurve float32    `yaml:"lateral_curve"`
	RuffleFreq   float32    `yaml:"ruffle_freq"`
	RuffleAmp    float32    `yaml:"ruffle_amp"`
	Resolution   int        `yaml:"resolution"`
	Color        [3]float32 `yaml:"color"`
}

// Inflorescence arranges copies of the flower along a branching stem.
// Its presence in a request turns inflorescence generation on.
type Inflorescence struct {
	Pattern            string     `yaml:"pattern"`
	AxisLength         float32    `yaml:"axis_length"`
	BranchCount        int        `yaml:"branch_count"`
	AngleTop           float32    `yaml:"angle_top"`
	AngleBottom        float32    `yaml:"angle_bottom"`
	BranchLengthTop    float32    `yaml:"branch_length_top"`
	BranchLengthBottom float32    `yaml:"branch_length_bottom"`
	RotationAngle      float32    `yaml:"rotation_angle"`
	FlowerSizeTop      float32    `yaml:"flower_size_top"`
	FlowerSizeBottom   float32    `yaml:"flower_size_bottom"`
	AgeDistribution    float32    `yaml:"age_distribution"`
	AxisCurveAmount    float32    `yaml:"axis_curve_amount"`
	AxisCurveDirection [3]float32 `yaml:"axis_curve_direction"`
	BranchCurveMode    string     `yaml:"branch_curve_mode"`
	BranchCurveAmount  float32    `yaml:"branch_curve_amount"`
	RecursionDepth     int        `yaml:"recursion_depth"`
	BranchRatio        float32    `yaml:"branch_ratio"`
	AngleDivergence    float32    `yaml:"angle_divergence"`

	// Aging swaps flowers for bud and wilt variants by branch age.
	Aging bool `yaml:"aging"`

	StemColor [3]float32 `yaml:"stem_color"`
}

// Logging holds logging settings.
type Logging struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultInflorescence returns the raceme defaults used when a request
// enables the inflorescence block without filling it in.
func DefaultInflorescence() Inflorescence {
	return Inflorescence{
		Pattern:            "raceme",
		AxisLength:         10.0,
		BranchCount:        12,
		AngleTop:           45.0,
		AngleBottom:        60.0,
		BranchLengthTop:    0.5,
		BranchLengthBottom: 1.5,
		RotationAngle:      137.5,
		FlowerSizeTop:      0.8,
		FlowerSizeBottom:   1.0,
		AgeDistribution:    1.0,
		AxisCurveDirection: [3]float32{1, 0, 0},
		BranchCurveMode:    "uniform",
		StemColor:          [3]float32{0.2, 0.6, 0.2},
	}
}

// Default returns a lily request with no inflorescence block.
func Default() *Request {
	return DefaultForPreset("lily")
}
