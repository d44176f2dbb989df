package generator

import (
	"github.com/Faultbox/blossom/internal/diagram"
)

// budFlowerParams derives the bud variant from the bloom parameters:
// petals shrink and curl tightly inward over the reproductive parts,
// sepals close around them, and surface detail is dropped.
func budFlowerParams(p diagram.FlowerParams) diagram.FlowerParams {
	p.Petal.Length *= 0.6
	p.Petal.Width *= 0.5
	p.Petal.Curl = 1.4
	p.Petal.Twist = 0
	p.Petal.RuffleFreq = 0
	p.Petal.RuffleAmp = 0

	p.Sepal.Curl = 0.9

	return p
}

// wiltFlowerParams derives the wilt variant from the bloom parameters:
// petals droop below horizontal and lose most of their twist and
// ruffle.
func wiltFlowerParams(p diagram.FlowerParams) diagram.FlowerParams {
	p.Petal.Curl = -0.9
	p.Petal.Twist *= 0.5
	p.Petal.RuffleAmp *= 0.5

	return p
}
