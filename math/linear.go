//----------------------------------------------------------------------
// This file is part of agum.
// Copyright (C) 2023-present, Bernd Fix  >Y<
//
// agum is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// agum is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package math

import (
	"errors"

	gerr "github.com/bfix/gospel/errors"
)

// ErrUnsolvable signals a linear Diophantine equation without integer
// solutions (the gcd of the unknown coefficients does not divide the
// right-hand side).
var ErrUnsolvable = errors.New("equation has no integer solution")

// LinSol binds one unknown of a linear Diophantine equation to a
// parametric integer expression
//
//	x[Idx] = Sum_j Factors[j]*p_j + Sum_j Consts[j]*y_j
//
// where p_0,p_1,... are fresh integer parameters introduced by the
// solver and y_0,y_1,... are the formal symbols of the right-hand side.
// All bindings returned by a single solver call share the same number
// of parameters. Unknowns without a binding are unconstrained.
type LinSol struct {
	Idx     int    // position of the unknown in the input list
	Factors []*Int // coefficients of the fresh parameters
	Consts  []*Int // coefficients of the right-hand side symbols
}

// SolveLinEq computes a most general integer solution of the equation
//
//	a[0]*x_0 + ... + a[n-1]*x_(n-1)  =  b[0]*y_0 + ... + b[m-1]*y_(m-1)
//
// where the x_i are integer unknowns and the y_j are formal symbols
// treated as independent basis elements. The unknown coefficients are
// reduced with a Euclidean elimination: the pivot is the coefficient
// of smallest non-zero magnitude (ties by smallest index), every other
// coefficient is replaced by its remainder under the pivot, and the
// inverse shear of each step is accumulated in a transform matrix.
// The loop ends when a single coefficient g = +-gcd(a) remains. The
// equation is solvable iff g divides every b[j]; otherwise
// ErrUnsolvable is returned.
//
// Every step is unimodular, so the returned solution family is most
// general: each unknown that takes part in the reduction receives a
// binding over the surviving free columns (one fresh parameter per
// eliminated unknown) and the scaled right-hand side. Unknowns with
// coefficient 0 are not bound.
//
// The pivot rule and the parameter order (ascending column index) make
// the output deterministic for identical inputs.
func SolveLinEq(a, b []*Int) ([]LinSol, error) {
	// collect the positions taking part in the reduction
	nz := make([]int, 0, len(a))
	for i, c := range a {
		if c.Sign() != 0 {
			nz = append(nz, i)
		}
	}
	if len(nz) == 0 {
		// gcd of an empty list is 0: only an all-zero right-hand
		// side can be produced
		for _, c := range b {
			if c.Sign() != 0 {
				return nil, gerr.New(ErrUnsolvable, "0 cannot produce %s", c)
			}
		}
		return []LinSol{}, nil
	}
	// working coefficients w and accumulated transform M: the original
	// unknowns are x = M*u for the current unknowns u, keeping
	// w = a*M invariant under all column operations.
	m := len(nz)
	w := make([]*Int, m)
	for k, i := range nz {
		w[k] = a[i]
	}
	M := make([][]*Int, m)
	for r := range M {
		M[r] = make([]*Int, m)
		for k := range M[r] {
			M[r][k] = ZERO
			if r == k {
				M[r][k] = ONE
			}
		}
	}
	// Euclidean elimination
	var p int
	for {
		p = -1
		for k := range w {
			if w[k].Sign() == 0 {
				continue
			}
			if p < 0 || w[k].Abs().Cmp(w[p].Abs()) < 0 {
				p = k
			}
		}
		reduced := false
		for k := range w {
			if k == p || w[k].Sign() == 0 {
				continue
			}
			// w[k] = q*w[p] + r with |r| < |w[p]|: shift the
			// quotient onto the pivot unknown and keep the
			// remainder as new coefficient.
			q, r := w[k].QuoRem(w[p])
			w[k] = r
			for j := range M {
				M[j][k] = M[j][k].Sub(q.Mul(M[j][p]))
			}
			reduced = true
		}
		if !reduced {
			break
		}
	}
	// the surviving pivot coefficient is +-gcd(a); check divisibility
	// and scale the right-hand side
	g := w[p]
	q := make([]*Int, len(b))
	for j, c := range b {
		quo, rem := c.QuoRem(g)
		if rem.Sign() != 0 {
			return nil, gerr.New(ErrUnsolvable, "gcd %s does not divide %s", g.Abs(), c)
		}
		q[j] = quo
	}
	// read the bindings off the transform: free columns become fresh
	// parameters, the pivot column carries the right-hand side.
	sols := make([]LinSol, m)
	for r := range sols {
		f := make([]*Int, 0, m-1)
		for k := 0; k < m; k++ {
			if k != p {
				f = append(f, M[r][k])
			}
		}
		c := make([]*Int, len(b))
		for j := range q {
			c[j] = M[r][p].Mul(q[j])
		}
		sols[r] = LinSol{Idx: nz[r], Factors: f, Consts: c}
	}
	return sols, nil
}
