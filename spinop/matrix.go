// SPDX-License-Identifier: MIT

// Package spinop - dense matrix realization.
//
// For spin quantum number s the per-site generator matrices have dimension
// d = 2s+1 and come from the ladder operators:
//
//	⟨m+1|S₊|m⟩ = √(s(s+1) − m(m+1)),  S₋ = S₊ᵀ
//	X = (S₊ + S₋)/2,  Y = (S₊ − S₋)/2i,  Z = diag(s, s−1, …, −s)
//
// For s = 1/2 these are the Pauli matrices scaled by 1/2.
//
// A term's matrix is assembled per site: factors are consumed left to
// right and multiplied into a single d×d product per site (legal because
// factors on different sites commute, while the per-site products preserve
// the non-commuting order). The full-space matrix is then one Kronecker
// chain with site 0 as the leftmost factor — never a per-factor embedding
// into the d^n space. The operator's matrix is the coefficient-weighted
// sum over its terms, accumulated in place.
//
// Memory is O(d^{2n}) and the caller opts into it explicitly; bounding
// num_sites is the caller's concern, not the engine's.

package spinop

import (
	"math"

	"github.com/katalvlaran/spinalg/cmatrix"
)

// generatorMatrices builds the d×d X, Y and Z matrices for spin s.
func generatorMatrices(s Spin) (x, y, z *cmatrix.Dense, err error) {
	d := s.Dim()
	if x, err = cmatrix.New(d, d); err != nil {
		return nil, nil, nil, err
	}
	if y, err = cmatrix.New(d, d); err != nil {
		return nil, nil, nil, err
	}
	if z, err = cmatrix.New(d, d); err != nil {
		return nil, nil, nil, err
	}

	// Row i holds magnetic quantum number m = s − i.
	ss1 := float64(s) * (float64(s) + 1)
	for i := 0; i < d; i++ {
		if err = z.Set(i, i, complex(float64(s)-float64(i), 0)); err != nil {
			return nil, nil, nil, err
		}
	}
	for i := 1; i < d; i++ {
		m := float64(s) - float64(i)
		v := math.Sqrt(ss1-m*(m+1)) / 2 // ladder amplitude, halved for X/Y
		if err = x.Set(i-1, i, complex(v, 0)); err != nil {
			return nil, nil, nil, err
		}
		if err = x.Set(i, i-1, complex(v, 0)); err != nil {
			return nil, nil, nil, err
		}
		if err = y.Set(i-1, i, complex(0, -v)); err != nil {
			return nil, nil, nil, err
		}
		if err = y.Set(i, i-1, complex(0, v)); err != nil {
			return nil, nil, nil, err
		}
	}

	return x, y, z, nil
}

// ToMatrix expands the operator into its dense matrix on the full
// d^{num_sites}-dimensional state space, with site 0 as the leftmost
// Kronecker factor: M = M₀ ⊗ M₁ ⊗ … ⊗ M_{n−1}.
//
// Implementation:
//   - Stage 1: build the three d×d generator matrices once.
//   - Stage 2: per term, fold factors left-to-right into per-site d×d
//     products (order matters only within a site).
//   - Stage 3: Kronecker-chain the per-site products (identity where a
//     site is untouched) and accumulate coeff·termMatrix into the result.
//
// Returns:
//   - *cmatrix.Dense of shape d^n × d^n.
//
// Complexity:
//   - Time O(terms · d^{2n}), Space O(d^{2n}).
func (a *SpinOp) ToMatrix() (*cmatrix.Dense, error) {
	d := a.spin.Dim()
	dim := 1
	for i := 0; i < a.numSites; i++ {
		dim *= d
	}

	genX, genY, genZ, err := generatorMatrices(a.spin)
	if err != nil {
		return nil, err
	}
	gens := [3]*cmatrix.Dense{GenX: genX, GenY: genY, GenZ: genZ}
	eye, err := cmatrix.Identity(d)
	if err != nil {
		return nil, err
	}

	acc, err := cmatrix.New(dim, dim)
	if err != nil {
		return nil, err
	}
	for ti := range a.terms {
		// Per-site products; nil marks an untouched (identity) site.
		site := make([]*cmatrix.Dense, a.numSites)
		for _, f := range a.terms[ti] {
			g := gens[f.Gen]
			for k := 0; k < f.Exp; k++ {
				if site[f.Site] == nil {
					site[f.Site] = g // shared base matrix; kernels never mutate operands
				} else if site[f.Site], err = site[f.Site].MatMul(g); err != nil {
					return nil, err
				}
			}
		}

		full, err := cmatrix.Identity(1)
		if err != nil {
			return nil, err
		}
		for s := 0; s < a.numSites; s++ {
			m := site[s]
			if m == nil {
				m = eye
			}
			if full, err = full.Kron(m); err != nil {
				return nil, err
			}
		}
		if err = acc.AddScaled(full, a.coeffs[ti]); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
