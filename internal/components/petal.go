package components

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// Control grid dimensions for the petal B-spline surface. Rows run
// along the length (v direction), columns across the width (u
// direction). Both directions use cubic degree.
const (
	petalGridRows = 9
	petalGridCols = 5
)

// PetalParams describes a petal surface with optional deformations.
// Sepals reuse the same shape with their own presets.
type PetalParams struct {
	// Length is the petal length from base to tip.
	Length float32

	// Width is the maximum petal width.
	Width float32

	// TipSharpness controls the tip, 0 for rounded and 1 for pointed.
	TipSharpness float32

	// BaseWidth is the width at the petal base.
	BaseWidth float32

	// Curl bends the petal up (+) or down (-), in [-1, 1].
	Curl float32

	// Twist is the total twist angle at the tip, in degrees.
	Twist float32

	// LateralCurve bends the petal sideways, in [-1, 1].
	LateralCurve float32

	// RuffleFreq is the number of edge waves along the length.
	RuffleFreq float32

	// RuffleAmp is the height of the edge waves.
	RuffleAmp float32

	// Resolution is the tessellation sample count per parametric
	// direction.
	Resolution int

	// Color is the RGB color in the 0-1 range.
	Color vmath.Vec3
}

// DefaultPetalParams returns a lily-like petal.
func DefaultPetalParams() PetalParams {
	return PetalParams{
		Length:       3.0,
		Width:        1.2,
		TipSharpness: 0.4,
		BaseWidth:    0.4,
		Resolution:   16,
		Color:        white,
	}
}

// WidePetalParams returns a wide, rounded petal.
func WidePetalParams() PetalParams {
	return PetalParams{
		Length:       2.5,
		Width:        2.0,
		TipSharpness: 0.2,
		BaseWidth:    0.8,
		Resolution:   20,
		Color:        white,
	}
}

// NarrowPetalParams returns a narrow, pointed petal.
func NarrowPetalParams() PetalParams {
	return PetalParams{
		Length:       4.0,
		Width:        1.0,
		TipSharpness: 0.7,
		BaseWidth:    0.3,
		Resolution:   16,
		Color:        white,
	}
}

// ShortPetalParams returns a short, rounded petal.
func ShortPetalParams() PetalParams {
	return PetalParams{
		Length:       1.5,
		Width:        1.2,
		TipSharpness: 0.1,
		BaseWidth:    0.6,
		Resolution:   12,
		Color:        white,
	}
}

// petalControlGrid builds the flat control point grid matching the
// petal outline: narrow at the base, widest at 60% of the length, then
// tapered toward the tip. The grid lies in the XY plane with the base
// at y=0 and the tip at y=length, indexed grid[row][col].
func petalControlGrid(p PetalParams) [][]vmath.Vec3 {
	grid := make([][]vmath.Vec3, petalGridRows)

	for row := range grid {
		v := float32(row) / float32(petalGridRows-1)
		y := v * p.Length

		var widthAtV float32
		if v < 0.6 {
			t := v / 0.6
			widthAtV = p.BaseWidth + (p.Width-p.BaseWidth)*t
		} else {
			t := (v - 0.6) / 0.4
			widthAtV = p.Width + (p.Width*p.TipSharpness-p.Width)*t
		}

		grid[row] = make([]vmath.Vec3, petalGridCols)
		for col := range grid[row] {
			u := float32(col) / float32(petalGridCols-1)
			x := (u - 0.5) * widthAtV
			grid[row][col] = vmath.Vec3{X: x, Y: y}
		}
	}

	return grid
}

// applyCurl rotates each row in the YZ plane by an angle growing
// quadratically toward the tip. Positive amounts curl toward +Z.
func applyCurl(grid [][]vmath.Vec3, amount float32) {
	rows := len(grid)

	for rowIdx, row := range grid {
		v := float32(rowIdx) / float32(rows-1)
		angle := amount * v * v * math32.Pi * 0.5

		sin := math32.Sin(angle)
		cos := math32.Cos(angle)
		for i, point := range row {
			row[i].Y = point.Y*cos - point.Z*sin
			row[i].Z = point.Y*sin + point.Z*cos
		}
	}
}

// applyTwist rotates each row around the Y axis by an angle growing
// linearly toward the tip.
func applyTwist(grid [][]vmath.Vec3, angleDeg float32) {
	angleRad := angleDeg * math32.Pi / 180
	rows := len(grid)

	for rowIdx, row := range grid {
		v := float32(rowIdx) / float32(rows-1)
		angle := angleRad * v

		sin := math32.Sin(angle)
		cos := math32.Cos(angle)
		for i, point := range row {
			row[i].X = point.X*cos - point.Z*sin
			row[i].Z = point.X*sin + point.Z*cos
		}
	}
}

// applyLateralCurve rotates each row in the XY plane by an angle
// growing quadratically toward the tip, bending the petal sideways.
func applyLateralCurve(grid [][]vmath.Vec3, amount float32) {
	rows := len(grid)

	for rowIdx, row := range grid {
		v := float32(rowIdx) / float32(rows-1)
		// Smaller multiplier than curl keeps the bend subtle.
		angle := amount * v * v * math32.Pi * 0.3

		sin := math32.Sin(angle)
		cos := math32.Cos(angle)
		for i, point := range row {
			row[i].X = point.X*cos - point.Y*sin
			row[i].Y = point.X*sin + point.Y*cos
		}
	}
}

// applyRuffle displaces points near the petal edges along Z with a
// sinusoidal wave running down the length. Points near the center
// column are left alone.
func applyRuffle(grid [][]vmath.Vec3, frequency, amplitude float32) {
	rows := len(grid)
	cols := len(grid[0])

	for rowIdx, row := range grid {
		v := float32(rowIdx) / float32(rows-1)
		wave := math32.Sin(v * frequency * math32.Pi * 2)

		for colIdx := range row {
			u := float32(colIdx) / float32(cols-1)

			// 0 at the center column, 1 at either edge.
			var edgeWeight float32
			if u < 0.5 {
				edgeWeight = 1 - u*2
			} else {
				edgeWeight = (u - 0.5) * 2
			}

			if edgeWeight > 0.3 {
				row[colIdx].Z += wave * amplitude * edgeWeight
			}
		}
	}
}

// Generate builds the petal mesh: control grid, deformations, B-spline
// surface, tessellation, then a duplicated back face so the petal is
// visible from both sides.
func (p PetalParams) Generate() (*geometry.Mesh, error) {
	if p.Resolution < 1 {
		return nil, fmt.Errorf("petal: resolution must be at least 1, got %d", p.Resolution)
	}

	grid := petalControlGrid(p)

	if math32.Abs(p.Curl) > 0.001 {
		applyCurl(grid, p.Curl)
	}
	if math32.Abs(p.Twist) > 0.001 {
		applyTwist(grid, p.Twist)
	}
	if math32.Abs(p.LateralCurve) > 0.001 {
		applyLateralCurve(grid, p.LateralCurve)
	}
	if math32.Abs(p.RuffleFreq) > 0.001 && math32.Abs(p.RuffleAmp) > 0.001 {
		applyRuffle(grid, p.RuffleFreq, p.RuffleAmp)
	}

	// The surface expects control points indexed [u][v]; the grid is
	// [row][col] = [v][u], so transpose.
	transposed := make([][]vmath.Vec3, petalGridCols)
	for col := range transposed {
		transposed[col] = make([]vmath.Vec3, petalGridRows)
		for row := 0; row < petalGridRows; row++ {
			transposed[col][row] = grid[row][col]
		}
	}

	surface, err := curve.NewBSplineSurface(transposed, 3, 3)
	if err != nil {
		return nil, fmt.Errorf("petal: %w", err)
	}

	res := p.Resolution
	mesh := geometry.NewMesh()

	for i := 0; i <= res; i++ {
		u := float32(i) / float32(res)
		for j := 0; j <= res; j++ {
			v := float32(j) / float32(res)

			pos := surface.Evaluate(u, v)
			normal := surface.Normal(u, v)
			mesh.AddVertex(pos, normal, vmath.Vec2{X: u, Y: v}, p.Color)
		}
	}

	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			i0 := uint32(i*(res+1) + j)
			i1 := i0 + 1
			i2 := i0 + uint32(res) + 1
			i3 := i2 + 1

			mesh.AddTriangle(i0, i2, i1)
			mesh.AddTriangle(i1, i2, i3)
		}
	}

	// Back face: duplicate the vertices with flipped normals and
	// reversed winding.
	frontCount := mesh.VertexCount()
	for i := 0; i < frontCount; i++ {
		mesh.AddVertex(mesh.Positions[i], mesh.Normals[i].Neg(), mesh.UVs[i], p.Color)
	}

	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			i0 := uint32(i*(res+1) + j + frontCount)
			i1 := i0 + 1
			i2 := i0 + uint32(res) + 1
			i3 := i2 + 1

			mesh.AddTriangle(i0, i1, i2)
			mesh.AddTriangle(i1, i3, i2)
		}
	}

	return mesh, nil
}
