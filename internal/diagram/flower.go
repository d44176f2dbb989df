package diagram

import (
	"fmt"

	"github.com/Faultbox/blossom/internal/components"
	"github.com/Faultbox/blossom/pkg/geometry"
)

// FlowerParams bundles a floral diagram with the parameters of every
// component type.
type FlowerParams struct {
	// Diagram is the arrangement plan.
	Diagram FloralDiagram

	// Receptacle parameterizes the flower base.
	Receptacle components.ReceptacleParams

	// Pistil parameterizes the pistils.
	Pistil components.PistilParams

	// Stamen parameterizes the stamens.
	Stamen components.StamenParams

	// Petal parameterizes the petals.
	Petal components.PetalParams

	// Sepal parameterizes the sepals, used only when the diagram has
	// sepal whorls.
	Sepal components.PetalParams
}

// LilyFlower returns a six-petal lily with curled, twisted petals.
func LilyFlower() FlowerParams {
	petal := components.DefaultPetalParams()
	petal.Curl = 0.4
	petal.Twist = 15
	petal.Resolution = 20

	return FlowerParams{
		Diagram:    LilyDiagram(),
		Receptacle: components.DefaultReceptacleParams(),
		Pistil:     components.DefaultPistilParams(),
		Stamen:     components.DefaultStamenParams(),
		Petal:      petal,
		Sepal:      components.DefaultSepalParams(),
	}
}

// FivePetalFlower returns a rose-like flower with wide ruffled petals.
func FivePetalFlower() FlowerParams {
	petal := components.WidePetalParams()
	petal.Curl = 0.2
	petal.Twist = 5
	petal.RuffleFreq = 3.0
	petal.RuffleAmp = 0.15
	petal.Resolution = 24

	return FlowerParams{
		Diagram:    FivePetalDiagram(),
		Receptacle: components.DefaultReceptacleParams(),
		Pistil:     components.DefaultPistilParams(),
		Stamen:     components.SlenderStamenParams(),
		Petal:      petal,
		Sepal:      components.DefaultSepalParams(),
	}
}

// DaisyFlower returns a daisy with a flat receptacle and narrow petals.
func DaisyFlower() FlowerParams {
	return FlowerParams{
		Diagram:    DaisyDiagram(),
		Receptacle: components.FlatReceptacleParams(),
		Pistil:     components.ShortPistilParams(),
		Stamen:     components.ShortStamenParams(),
		Petal:      components.NarrowPetalParams(),
		Sepal:      components.DefaultSepalParams(),
	}
}

// GenerateFlower assembles a complete flower mesh: the receptacle plus
// one transformed instance of the matching template per placement.
// Templates are generated once and cloned per instance.
func GenerateFlower(params FlowerParams) (*geometry.Mesh, error) {
	flower, err := params.Receptacle.Generate()
	if err != nil {
		return nil, fmt.Errorf("flower receptacle: %w", err)
	}

	pistilTemplate, err := params.Pistil.Generate()
	if err != nil {
		return nil, fmt.Errorf("flower pistil: %w", err)
	}
	stamenTemplate, err := params.Stamen.Generate()
	if err != nil {
		return nil, fmt.Errorf("flower stamen: %w", err)
	}
	petalTemplate, err := params.Petal.Generate()
	if err != nil {
		return nil, fmt.Errorf("flower petal: %w", err)
	}

	var sepalTemplate *geometry.Mesh
	if len(params.Diagram.SepalWhorls) > 0 {
		sepalTemplate, err = params.Sepal.Generate()
		if err != nil {
			return nil, fmt.Errorf("flower sepal: %w", err)
		}
	}

	mapper := NewReceptacleMapper(params.Receptacle)

	for _, placement := range params.Diagram.Placements() {
		var template *geometry.Mesh
		switch placement.Type {
		case ComponentPistil:
			template = pistilTemplate
		case ComponentStamen:
			template = stamenTemplate
		case ComponentPetal:
			template = petalTemplate
		case ComponentSepal:
			template = sepalTemplate
		default:
			continue
		}

		instance := template.Clone()
		instance.Transform(mapper.MapTo3D(placement).Matrix())
		flower.Merge(instance)
	}

	return flower, nil
}
