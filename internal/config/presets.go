package config

import (
	"github.com/Faultbox/blossom/internal/components"
	"github.com/Faultbox/blossom/internal/diagram"
	"github.com/Faultbox/blossom/internal/inflorescence"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// presetParams maps a preset name to its flower parameters.
func presetParams(name string) (diagram.FlowerParams, bool) {
	switch name {
	case "", "lily":
		return diagram.LilyFlower(), true
	case "five-petal":
		return diagram.FivePetalFlower(), true
	case "daisy":
		return diagram.DaisyFlower(), true
	default:
		return diagram.FlowerParams{}, false
	}
}

// DefaultForPreset returns a request seeded from a named flower preset.
// Unknown names fall back to the lily.
func DefaultForPreset(name string) *Request {
	params, ok := presetParams(name)
	if !ok {
		params = diagram.LilyFlower()
		name = "lily"
	}

	return &Request{
		Flower:  flowerSection(name, params),
		Logging: Logging{Level: "info"},
	}
}

// FlowerParams converts the flower section to domain parameters.
func (f Flower) FlowerParams() diagram.FlowerParams {
	return diagram.FlowerParams{
		Diagram:    f.Diagram.floralDiagram(),
		Receptacle: f.Receptacle.params(),
		Pistil:     f.Pistil.params(),
		Stamen:     f.Stamen.params(),
		Petal:      f.Petal.params(),
		Sepal:      f.Sepal.params(),
	}
}

// InflorescenceParams converts the inflorescence section to domain
// parameters.
func (i Inflorescence) InflorescenceParams() inflorescence.InflorescenceParams {
	return inflorescence.InflorescenceParams{
		Pattern:            inflorescence.PatternType(i.Pattern),
		AxisLength:         i.AxisLength,
		BranchCount:        i.BranchCount,
		AngleTop:           i.AngleTop,
		AngleBottom:        i.AngleBottom,
		BranchLengthTop:    i.BranchLengthTop,
		BranchLengthBottom: i.BranchLengthBottom,
		RotationAngle:      i.RotationAngle,
		FlowerSizeTop:      i.FlowerSizeTop,
		FlowerSizeBottom:   i.FlowerSizeBottom,
		AgeDistribution:    i.AgeDistribution,
		AxisCurveAmount:    i.AxisCurveAmount,
		AxisCurveDirection: vec3(i.AxisCurveDirection),
		BranchCurveMode:    inflorescence.CurveMode(i.BranchCurveMode),
		BranchCurveAmount:  i.BranchCurveAmount,
		RecursionDepth:     i.RecursionDepth,
		BranchRatio:        i.BranchRatio,
		AngleDivergence:    i.AngleDivergence,
	}
}

// StemColorVec returns the stem color as a vector.
func (i Inflorescence) StemColorVec() vmath.Vec3 {
	return vec3(i.StemColor)
}

func flowerSection(preset string, params diagram.FlowerParams) Flower {
	return Flower{
		Preset:     preset,
		Diagram:    diagramSection(params.Diagram),
		Receptacle: receptacleSection(params.Receptacle),
		Pistil:     pistilSection(params.Pistil),
		Stamen:     stamenSection(params.Stamen),
		Petal:      petalSection(params.Petal),
		Sepal:      petalSection(params.Sepal),
	}
}

func diagramSection(d diagram.FloralDiagram) Diagram {
	return Diagram{
		ReceptacleHeight: d.ReceptacleHeight,
		ReceptacleRadius: d.ReceptacleRadius,
		Petals:           whorlSections(d.PetalWhorls),
		Stamens:          whorlSections(d.StamenWhorls),
		Pistils:          whorlSections(d.PistilWhorls),
		Sepals:           whorlSections(d.SepalWhorls),
		PositionJitter:   d.PositionJitter,
		AngleJitter:      d.AngleJitter,
		SizeJitter:       d.SizeJitter,
		Seed:             d.JitterSeed,
	}
}

func whorlSections(whorls []diagram.ComponentWhorl) []Whorl {
	if len(whorls) == 0 {
		return nil
	}

	sections := make([]Whorl, 0, len(whorls))
	for _, w := range whorls {
		sections = append(sections, Whorl{
			Count:          w.Count,
			Radius:         w.Radius,
			Height:         w.Height,
			Pattern:        string(w.Pattern),
			RotationOffset: w.RotationOffset,
			CustomOffset:   w.CustomOffset,
			TiltAngle:      w.TiltAngle,
		})
	}
	return sections
}

func receptacleSection(p components.ReceptacleParams) Receptacle {
	return Receptacle{
		Height:         p.Height,
		BaseRadius:     p.BaseRadius,
		BulgeRadius:    p.BulgeRadius,
		TopRadius:      p.TopRadius,
		BulgePosition:  p.BulgePosition,
		Segments:       p.Segments,
		ProfileSamples: p.ProfileSamples,
		Color:          arr3(p.Color),
	}
}

func pistilSection(p components.PistilParams) Pistil {
	return Pistil{
		Length:       p.Length,
		BaseRadius:   p.BaseRadius,
		TipRadius:    p.TipRadius,
		StigmaRadius: p.StigmaRadius,
		Segments:     p.Segments,
		Droop:        p.Droop,
		Color:        arr3(p.Color),
	}
}

func stamenSection(p components.StamenParams) Stamen {
	return Stamen{
		FilamentLength: p.FilamentLength,
		FilamentRadius: p.FilamentRadius,
		AntherLength:   p.AntherLength,
		AntherWidth:    p.AntherWidth,
		AntherHeight:   p.AntherHeight,
		Segments:       p.Segments,
		Color:          arr3(p.Color),
	}
}

func petalSection(p components.PetalParams) Petal {
	return Petal{
		Length:       p.Length,
		Width:        p.Width,
		TipSharpness: p.TipSharpness,
		BaseWidth:    p.BaseWidth,
		Curl:         p.Curl,
		Twist:        p.Twist,
		LateralCurve: p.LateralCurve,
		RuffleFreq:   p.RuffleFreq,
		RuffleAmp:    p.RuffleAmp,
		Resolution:   p.Resolution,
		Color:        arr3(p.Color),
	}
}

func (d Diagram) floralDiagram() diagram.FloralDiagram {
	return diagram.FloralDiagram{
		ReceptacleHeight: d.ReceptacleHeight,
		ReceptacleRadius: d.ReceptacleRadius,
		PetalWhorls:      domainWhorls(d.Petals),
		StamenWhorls:     domainWhorls(d.Stamens),
		PistilWhorls:     domainWhorls(d.Pistils),
		SepalWhorls:      domainWhorls(d.Sepals),
		PositionJitter:   d.PositionJitter,
		AngleJitter:      d.AngleJitter,
		SizeJitter:       d.SizeJitter,
		JitterSeed:       d.Seed,
	}
}

func domainWhorls(sections []Whorl) []diagram.ComponentWhorl {
	if len(sections) == 0 {
		return nil
	}

	whorls := make([]diagram.ComponentWhorl, 0, len(sections))
	for _, s := range sections {
		whorls = append(whorls, diagram.ComponentWhorl{
			Count:          s.Count,
			Radius:         s.Radius,
			Height:         s.Height,
			Pattern:        diagram.ArrangementPattern(s.Pattern),
			RotationOffset: s.RotationOffset,
			CustomOffset:   s.CustomOffset,
			TiltAngle:      s.TiltAngle,
		})
	}
	return whorls
}

func (r Receptacle) params() components.ReceptacleParams {
	return components.ReceptacleParams{
		Height:         r.Height,
		BaseRadius:     r.BaseRadius,
		BulgeRadius:    r.BulgeRadius,
		TopRadius:      r.TopRadius,
		BulgePosition:  r.BulgePosition,
		Segments:       r.Segments,
		ProfileSamples: r.ProfileSamples,
		Color:          vec3(r.Color),
	}
}

func (p Pistil) params() components.PistilParams {
	return components.PistilParams{
		Length:       p.Length,
		BaseRadius:   p.BaseRadius,
		TipRadius:    p.TipRadius,
		StigmaRadius: p.StigmaRadius,
		Segments:     p.Segments,
		Droop:        p.Droop,
		Color:        vec3(p.Color),
	}
}

func (s Stamen) params() components.StamenParams {
	return components.StamenParams{
		FilamentLength: s.FilamentLength,
		FilamentRadius: s.FilamentRadius,
		AntherLength:   s.AntherLength,
		AntherWidth:    s.AntherWidth,
		AntherHeight:   s.AntherHeight,
		Segments:       s.Segments,
		Color:          vec3(s.Color),
	}
}

func (p Petal) params() components.PetalParams {
	return components.PetalParams{
		Length:       p.Length,
		Width:        p.Width,
		TipSharpness: p.TipSharpness,
		BaseWidth:    p.BaseWidth,
		Curl:         p.Curl,
		Twist:        p.Twist,
		LateralCurve: p.LateralCurve,
		RuffleFreq:   p.RuffleFreq,
		RuffleAmp:    p.RuffleAmp,
		Resolution:   p.Resolution,
		Color:        vec3(p.Color),
	}
}

func vec3(a [3]float32) vmath.Vec3 {
	return vmath.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func arr3(v vmath.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
