// Package generator runs the full mesh generation pipeline: it turns a
// request document into component templates, an assembled flower, an
// optional inflorescence, and finally flat vertex buffers.
package generator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/blossom/internal/config"
	"github.com/Faultbox/blossom/internal/diagram"
	"github.com/Faultbox/blossom/internal/inflorescence"
	"github.com/Faultbox/blossom/internal/logger"
	"github.com/Faultbox/blossom/pkg/geometry"
)

// Result holds the generated geometry as flat buffers: positions,
// normals, and colors are 3-wide, uvs 2-wide, and indices form
// triangles. Buffers are complete or absent; a failed generation emits
// nothing.
type Result struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Colors    []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the result.
func (r *Result) VertexCount() int {
	return len(r.Positions) / 3
}

// TriangleCount returns the number of triangles in the result.
func (r *Result) TriangleCount() int {
	return len(r.Indices) / 3
}

// Generate runs the pipeline for a request. The flower section always
// produces the bloom mesh; an inflorescence block replicates it along
// the branching pattern, with bud and wilt variants when aging is on.
func Generate(req *config.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	params := req.Flower.FlowerParams()

	bloom, err := diagram.GenerateFlower(params)
	if err != nil {
		return nil, fmt.Errorf("generating flower: %w", err)
	}
	logger.L().Info("flower assembled",
		zap.String("preset", req.Flower.Preset),
		zap.Int("vertices", bloom.VertexCount()),
		zap.Int("triangles", bloom.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	mesh := bloom
	if req.Inflorescence != nil {
		stageStart := time.Now()

		mesh, err = assembleInflorescence(req.Inflorescence, params, bloom)
		if err != nil {
			return nil, err
		}
		logger.L().Info("inflorescence assembled",
			zap.String("pattern", req.Inflorescence.Pattern),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Int("triangles", mesh.TriangleCount()),
			zap.Duration("elapsed", time.Since(stageStart)),
		)
	}

	return &Result{
		Positions: mesh.FlatPositions(),
		Normals:   mesh.FlatNormals(),
		UVs:       mesh.FlatUVs(),
		Colors:    mesh.FlatColors(),
		Indices:   append([]uint32(nil), mesh.Indices...),
	}, nil
}

func assembleInflorescence(section *config.Inflorescence, flowerParams diagram.FlowerParams, bloom *geometry.Mesh) (*geometry.Mesh, error) {
	params := section.InflorescenceParams()
	stemColor := section.StemColorVec()

	if !section.Aging {
		mesh, err := inflorescence.Assemble(params, bloom, stemColor)
		if err != nil {
			return nil, fmt.Errorf("generating inflorescence: %w", err)
		}
		return mesh, nil
	}

	bud, err := diagram.GenerateFlower(budFlowerParams(flowerParams))
	if err != nil {
		return nil, fmt.Errorf("generating bud variant: %w", err)
	}
	wilt, err := diagram.GenerateFlower(wiltFlowerParams(flowerParams))
	if err != nil {
		return nil, fmt.Errorf("generating wilt variant: %w", err)
	}
	logger.L().Debug("aging variants generated",
		zap.Int("bud_vertices", bud.VertexCount()),
		zap.Int("wilt_vertices", wilt.VertexCount()),
	)

	aging := inflorescence.NewFlowerAgingWithWilt(bud, bloom, wilt)
	mesh, err := inflorescence.AssembleWithAging(params, aging, stemColor)
	if err != nil {
		return nil, fmt.Errorf("generating inflorescence: %w", err)
	}
	return mesh, nil
}
