package algebra

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

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/bfix/agum/math"
)

// integer coefficients used by the scenario tests
func n(v int64) *math.Int { return math.NewInt(v) }

func TestMatchScenarios(t *testing.T) {
	cases := []struct {
		eq  Equation
		out string // expected matcher result, "" for no solution
	}{
		// 2x + y = 3z
		{Equation{Var("x").Scale(n(2)).Add(Var("y")), Var("z").Scale(n(3))},
			"[x : g0, y : -2g0 + 3z]"},
		// 2x = x + y
		{Equation{Var("x").Scale(n(2)), Var("x").Add(Var("y"))},
			""},
		// 64x - 41y = a
		{Equation{Var("x").Scale(n(64)).Sub(Var("y").Scale(n(41))), Var("a")},
			"[x : -16a + 41g0, y : -25a + 64g0]"},
		// x = x
		{Equation{Var("x"), Var("x")},
			"[]"},
		// 0 = x
		{Equation{Zero(), Var("x")},
			""},
		// 6x + 10y = 2a
		{Equation{Var("x").Scale(n(6)).Add(Var("y").Scale(n(10))), Var("a").Scale(n(2))},
			"[x : 2a - 5g0, y : -a + 3g0]"},
		// 0 = 0
		{Equation{Zero(), Zero()},
			"[]"},
	}
	for _, c := range cases {
		s, err := Match(c.eq)
		if len(c.out) == 0 {
			if !errors.Is(err, ErrNoSolution) {
				t.Fatalf("%s: expected no solution, got %v / %v", c.eq, s, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %s", c.eq, err)
		}
		if got := s.String(); got != c.out {
			t.Fatalf("%s: got %s, expected %s", c.eq, got, c.out)
		}
		if !s.Apply(c.eq.Lhs).Equal(c.eq.Rhs) {
			t.Fatalf("%s: result %s is no match", c.eq, s)
		}
	}
}

// random equation with a solvable tilt: half of the runs force the
// right side to be a multiple of the left-side gcd
func rndEquation() Equation {
	lhs, rhs := rndTerm(), rndTerm()
	if math.NewIntRnd(math.TWO).Sign() == 0 {
		g := math.ZERO
		for _, a := range lhs.Assocs() {
			g = g.GCD(a.Coeff)
		}
		if g.Sign() != 0 {
			rhs = rhs.Scale(g)
		}
	}
	return Equation{Lhs: lhs, Rhs: rhs}
}

func TestMatchSound(t *testing.T) {
	solved := 0
	for i := 0; i < 300; i++ {
		eq := rndEquation()
		s, err := Match(eq)
		if err != nil {
			continue
		}
		solved++
		if !s.Apply(eq.Lhs).Equal(eq.Rhs) {
			t.Fatalf("%s: %s does not solve the match", eq, s)
		}
	}
	if solved == 0 {
		t.Fatal("no random instance was solvable")
	}
}

// every generated name is fresh: 'g' followed by digits, not occurring
// in the input equation
func TestMatchFreshness(t *testing.T) {
	inputs := []Equation{
		{Var("x").Scale(n(2)).Add(Var("y")), Var("z").Scale(n(3))},
		// input clashes with the start of the fresh pool
		{Var("x").Scale(n(2)).Add(Var("g0")), Var("g1").Scale(n(3))},
	}
	for _, eq := range inputs {
		inUse := make(map[string]bool)
		for _, a := range eq.Lhs.Assocs() {
			inUse[a.Name] = true
		}
		for _, a := range eq.Rhs.Assocs() {
			inUse[a.Name] = true
		}
		s, err := Match(eq)
		if err != nil {
			t.Fatalf("%s: %s", eq, err)
		}
		for _, x := range s.Domain() {
			for _, a := range s.Get(x).Assocs() {
				if inUse[a.Name] {
					continue // symbol from the right side
				}
				if a.Name[0] != 'g' {
					t.Fatalf("%s: fresh name '%s' without 'g' prefix", eq, a.Name)
				}
				for _, r := range a.Name[1:] {
					if !unicode.IsDigit(r) {
						t.Fatalf("%s: malformed fresh name '%s'", eq, a.Name)
					}
				}
			}
		}
	}
	// the avoiding pool skips clashing input names
	s, err := Match(inputs[1])
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range s.Domain() {
		if strings.Contains(s.Get(x).String(), "g0") && x != "g0" {
			// g0 is an unknown of this equation, not a fresh name
			t.Fatalf("pool reused input name g0: %s", s)
		}
	}
}

// sampling test for most-general-ness: random instantiations of the
// fresh parameters still solve the problem
func TestMatchMostGeneral(t *testing.T) {
	for i := 0; i < 100; i++ {
		eq := rndEquation()
		s, err := Match(eq)
		if err != nil {
			continue
		}
		// collect the fresh names introduced by the matcher
		inUse := make(map[string]bool)
		for _, a := range eq.Lhs.Assocs() {
			inUse[a.Name] = true
		}
		for _, a := range eq.Rhs.Assocs() {
			inUse[a.Name] = true
		}
		syms := eq.Rhs.Assocs()
		inst := make(map[string]Term)
		for _, x := range s.Domain() {
			for _, a := range s.Get(x).Assocs() {
				if inUse[a.Name] || inst[a.Name].coeff != nil {
					continue
				}
				// random integer combination of the symbols
				v := Zero()
				for _, sym := range syms {
					v = v.Add(Var(sym.Name).Scale(rndCoeff()))
				}
				inst[a.Name] = v
			}
		}
		c := s.Compose(NewSubst(inst))
		if !c.Apply(eq.Lhs).Equal(eq.Rhs) {
			t.Fatalf("%s: instantiated solution broken", eq)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	eq := Equation{
		Lhs: Var("x").Scale(n(12)).Add(Var("y").Scale(n(-21))).Add(Var("z").Scale(n(33))),
		Rhs: Var("a").Scale(n(3)).Sub(Var("b").Scale(n(6))),
	}
	s1, err := Match(eq)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := Match(eq)
	if err != nil {
		t.Fatal(err)
	}
	if !s1.Equal(s2) || s1.String() != s2.String() {
		t.Fatalf("results differ: %s / %s", s1, s2)
	}
}
