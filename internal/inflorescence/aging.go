package inflorescence

import (
	"github.com/Faultbox/blossom/pkg/geometry"
)

// Age thresholds separating the bud, bloom, and wilt stages.
const (
	budThreshold  = 0.3
	wiltThreshold = 0.8
)

// FlowerAging holds the flower meshes for the three bloom stages. The
// wilt mesh is optional; old flowers fall back to the bloom mesh when it
// is nil.
type FlowerAging struct {
	Bud   *geometry.Mesh
	Bloom *geometry.Mesh
	Wilt  *geometry.Mesh
}

// NewFlowerAging returns an aging set with bud and bloom stages only.
func NewFlowerAging(bud, bloom *geometry.Mesh) FlowerAging {
	return FlowerAging{Bud: bud, Bloom: bloom}
}

// NewFlowerAgingWithWilt returns an aging set with all three stages.
func NewFlowerAgingWithWilt(bud, bloom, wilt *geometry.Mesh) FlowerAging {
	return FlowerAging{Bud: bud, Bloom: bloom, Wilt: wilt}
}

// SelectMesh picks the stage mesh for a branch age. Young branches get
// the bud, mature ones the bloom, and the oldest the wilt mesh.
func (a FlowerAging) SelectMesh(age float32) *geometry.Mesh {
	switch {
	case age < budThreshold:
		return a.Bud
	case age < wiltThreshold:
		return a.Bloom
	case a.Wilt != nil:
		return a.Wilt
	default:
		return a.Bloom
	}
}

// Thresholds returns the bud and wilt age cutoffs.
func (a FlowerAging) Thresholds() (float32, float32) {
	return budThreshold, wiltThreshold
}
