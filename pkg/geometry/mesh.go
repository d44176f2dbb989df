// Package geometry provides the triangle mesh type and shell generators
// used by the flower components.
package geometry

import (
	"github.com/Faultbox/blossom/pkg/vmath"
)

// Mesh is a triangle mesh with structure-of-arrays vertex attributes.
// All attribute slices have the same length; indices come in triples.
type Mesh struct {
	Positions []vmath.Vec3
	Normals   []vmath.Vec3
	UVs       []vmath.Vec2
	Colors    []vmath.Vec3
	Indices   []uint32
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex with all attributes and returns its index.
func (m *Mesh) AddVertex(position, normal vmath.Vec3, uv vmath.Vec2, color vmath.Vec3) uint32 {
	idx := uint32(len(m.Positions))
	m.Positions = append(m.Positions, position)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	m.Colors = append(m.Colors, color)
	return idx
}

// AddTriangle appends a triangle by vertex indices.
func (m *Mesh) AddTriangle(i0, i1, i2 uint32) {
	m.Indices = append(m.Indices, i0, i1, i2)
}

// AddQuad appends a quad as two triangles (i0,i1,i2) and (i0,i2,i3).
func (m *Mesh) AddQuad(i0, i1, i2, i3 uint32) {
	m.AddTriangle(i0, i1, i2)
	m.AddTriangle(i0, i2, i3)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clear removes all vertices and indices.
func (m *Mesh) Clear() {
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.Colors = m.Colors[:0]
	m.Indices = m.Indices[:0]
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Positions: make([]vmath.Vec3, len(m.Positions)),
		Normals:   make([]vmath.Vec3, len(m.Normals)),
		UVs:       make([]vmath.Vec2, len(m.UVs)),
		Colors:    make([]vmath.Vec3, len(m.Colors)),
		Indices:   make([]uint32, len(m.Indices)),
	}
	copy(c.Positions, m.Positions)
	copy(c.Normals, m.Normals)
	copy(c.UVs, m.UVs)
	copy(c.Colors, m.Colors)
	copy(c.Indices, m.Indices)
	return c
}

// Merge appends another mesh, offsetting its indices by the current
// vertex count.
func (m *Mesh) Merge(other *Mesh) {
	offset := uint32(len(m.Positions))
	m.Positions = append(m.Positions, other.Positions...)
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	m.Colors = append(m.Colors, other.Colors...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// Transform applies a matrix to all positions. Normals are transformed
// by the inverse transpose and renormalized, so non-uniform scale does
// not shear them.
func (m *Mesh) Transform(mat vmath.Mat4) {
	normalMat := mat.Inverse().Transpose()

	for i := range m.Positions {
		m.Positions[i] = mat.TransformPoint(m.Positions[i])
	}
	for i := range m.Normals {
		m.Normals[i] = normalMat.TransformDirection(m.Normals[i]).Normalize()
	}
}

// RecomputeNormals recalculates vertex normals from triangle geometry,
// weighting each face's contribution by its area. Triangles with squared
// area below 1e-10 are skipped. Vertices that receive no contribution
// point up.
func (m *Mesh) RecomputeNormals() {
	for i := range m.Normals {
		m.Normals[i] = vmath.Vec3{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := m.Indices[i]
		i1 := m.Indices[i+1]
		i2 := m.Indices[i+2]

		p0 := m.Positions[i0]
		p1 := m.Positions[i1]
		p2 := m.Positions[i2]

		// Cross product length is twice the triangle area.
		faceNormal := p1.Sub(p0).Cross(p2.Sub(p0))
		if faceNormal.LengthSquared() < 1e-10 {
			continue
		}

		m.Normals[i0] = m.Normals[i0].Add(faceNormal)
		m.Normals[i1] = m.Normals[i1].Add(faceNormal)
		m.Normals[i2] = m.Normals[i2].Add(faceNormal)
	}

	for i := range m.Normals {
		if m.Normals[i].Length() > 1e-6 {
			m.Normals[i] = m.Normals[i].Normalize()
		} else {
			m.Normals[i] = vmath.Vec3{Y: 1}
		}
	}
}

// FlatPositions returns positions as a flat xyz float32 slice.
func (m *Mesh) FlatPositions() []float32 {
	return flattenVec3(m.Positions)
}

// FlatNormals returns normals as a flat xyz float32 slice.
func (m *Mesh) FlatNormals() []float32 {
	return flattenVec3(m.Normals)
}

// FlatUVs returns texture coordinates as a flat uv float32 slice.
func (m *Mesh) FlatUVs() []float32 {
	out := make([]float32, 0, len(m.UVs)*2)
	for _, v := range m.UVs {
		out = append(out, v.X, v.Y)
	}
	return out
}

// FlatColors returns vertex colors as a flat rgb float32 slice.
func (m *Mesh) FlatColors() []float32 {
	return flattenVec3(m.Colors)
}

func flattenVec3(vs []vmath.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}
