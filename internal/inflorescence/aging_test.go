package inflorescence

import (
	"testing"

	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

func stageMesh(vertices int) *geometry.Mesh {
	mesh := geometry.NewMesh()
	for i := 0; i < vertices; i++ {
		mesh.AddVertex(vmath.Vec3{X: float32(i)}, vmath.Vec3{Y: 1}, vmath.Vec2{}, vmath.Vec3{X: 1})
	}
	return mesh
}

func TestSelectMeshStages(t *testing.T) {
	bud := stageMesh(1)
	bloom := stageMesh(2)
	wilt := stageMesh(3)
	aging := NewFlowerAgingWithWilt(bud, bloom, wilt)

	tests := []struct {
		age  float32
		want *geometry.Mesh
	}{
		{0, bud},
		{0.29, bud},
		{0.3, bloom},
		{0.5, bloom},
		{0.79, bloom},
		{0.8, wilt},
		{1, wilt},
	}

	for _, tt := range tests {
		if got := aging.SelectMesh(tt.age); got != tt.want {
			t.Errorf("SelectMesh(%v) = %d vertices, want %d vertices",
				tt.age, got.VertexCount(), tt.want.VertexCount())
		}
	}
}

func TestSelectMeshWiltFallsBackToBloom(t *testing.T) {
	bud := stageMesh(1)
	bloom := stageMesh(2)
	aging := NewFlowerAging(bud, bloom)

	if got := aging.SelectMesh(0.9); got != bloom {
		t.Errorf("SelectMesh(0.9) without wilt = %d vertices, want bloom", got.VertexCount())
	}
}

func TestThresholds(t *testing.T) {
	budCutoff, wiltCutoff := FlowerAging{}.Thresholds()
	if budCutoff != 0.3 || wiltCutoff != 0.8 {
		t.Errorf("Thresholds() = (%v, %v), want (0.3, 0.8)", budCutoff, wiltCutoff)
	}
}
