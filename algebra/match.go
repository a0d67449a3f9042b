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

package algebra

import (
	"errors"
	"strconv"

	"github.com/bfix/agum/math"
	gerr "github.com/bfix/gospel/errors"
)

// ErrNoSolution signals that no substitution maps the left side of an
// equation to its right side.
var ErrNoSolution = errors.New("no solution")

// freshPool hands out parameter names g0, g1, ... skipping names that
// occur in the input equation. A pool is scoped to one Match call so
// identical inputs yield identical outputs.
type freshPool struct {
	used map[string]bool
	next int
}

func newFreshPool(eq Equation) *freshPool {
	used := make(map[string]bool)
	for _, a := range eq.Lhs.Assocs() {
		used[a.Name] = true
	}
	for _, a := range eq.Rhs.Assocs() {
		used[a.Name] = true
	}
	return &freshPool{used: used}
}

func (fp *freshPool) name() string {
	for {
		n := "g" + strconv.Itoa(fp.next)
		fp.next++
		if !fp.used[n] {
			return n
		}
	}
}

// Match computes a most general substitution s with s(lhs) = rhs, or
// ErrNoSolution. The variables of the left side become the unknowns of
// a linear Diophantine equation whose right-hand side symbols are the
// variables of the right side; the parametric solver output is lifted
// back into terms over fresh parameter names.
func Match(eq Equation) (Subst, error) {
	la := eq.Lhs.Assocs()
	lb := eq.Rhs.Assocs()
	if len(la) == 0 {
		if len(lb) == 0 {
			return NewSubst(nil), nil
		}
		return Subst{}, gerr.New(ErrNoSolution, "0 matches nothing but 0")
	}
	a := make([]*math.Int, len(la))
	for i, e := range la {
		a[i] = e.Coeff
	}
	b := make([]*math.Int, len(lb))
	for j, e := range lb {
		b[j] = e.Coeff
	}
	sols, err := math.SolveLinEq(a, b)
	if err != nil {
		return Subst{}, gerr.New(ErrNoSolution, "%s", eq)
	}
	// lift the parametric solution: parameter names first, then one
	// fresh name per unbound unknown, all from the same avoiding pool
	pool := newFreshPool(eq)
	k := 0
	if len(sols) > 0 {
		k = len(sols[0].Factors)
	}
	pnames := make([]string, k)
	for i := range pnames {
		pnames[i] = pool.name()
	}
	byIdx := make(map[int]math.LinSol, len(sols))
	for _, sol := range sols {
		byIdx[sol.Idx] = sol
	}
	binds := make(map[string]Term, len(la))
	for i, e := range la {
		sol, ok := byIdx[i]
		if !ok {
			binds[e.Name] = Var(pool.name())
			continue
		}
		t := Zero()
		for j, f := range sol.Factors {
			t = t.Add(Var(pnames[j]).Scale(f))
		}
		for j, c := range sol.Consts {
			t = t.Add(Var(lb[j].Name).Scale(c))
		}
		binds[e.Name] = t
	}
	return NewSubst(binds), nil
}
