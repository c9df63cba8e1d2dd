// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Basis names the smooth 2D noise function that octaves are summed from.
type Basis string

const (
	Perlin  Basis = "perlin"
	Simplex Basis = "simplex"
)

// basisSeed is fixed so a basis is the same function for every Config.Seed.
const basisSeed = 0

// Perlin parameters for a single octave (octaves are summed by Generate).
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 1

	// perlinPeriod is the lattice period of go-perlin's permutation table.
	perlinPeriod = 256
)

// sampler returns basis values in [0, 1].
type sampler interface {
	sample(x, y float64) float64
}

type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) sample(x, y float64) float64 {
	// go-perlin truncates towards zero, so fold negative coordinates into its period
	x = wrap(x, perlinPeriod)
	y = wrap(y, perlinPeriod)
	return clamp01((s.p.Noise2D(x, y) + 1) * 0.5)
}

type simplexSampler struct {
	n opensimplex.Noise
}

func (s simplexSampler) sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

var (
	perlinBasis  = perlinSampler{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, basisSeed)}
	simplexBasis = simplexSampler{n: opensimplex.NewNormalized(basisSeed)}
)

// sampler resolves the basis. The zero value is Perlin.
func (basis Basis) sampler() (sampler, error) {
	switch basis {
	case "", Perlin:
		return perlinBasis, nil
	case Simplex:
		return simplexBasis, nil
	default:
		return nil, &terrain.ConfigError{Field: "basis", Value: string(basis), Reason: "unknown"}
	}
}
