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
	"testing"

	"github.com/bfix/agum/math"
)

func TestSubstIdentity(t *testing.T) {
	// x -> x is the identity and elided; y -> 0 eliminates y.
	s := NewSubst(map[string]Term{
		"x": Var("x"),
		"y": Zero(),
		"z": Var("x").Scale(math.TWO),
	})
	dom := s.Domain()
	if len(dom) != 2 || dom[0] != "y" || dom[1] != "z" {
		t.Fatalf("unexpected domain %v", dom)
	}
	if !s.Get("x").Equal(Var("x")) {
		t.Fatal("unbound variable not mapped to itself")
	}
	if !s.Get("y").IsZero() {
		t.Fatal("elimination lost")
	}
}

func TestSubstApply(t *testing.T) {
	// s = [x : u + v, y : -w]
	s := NewSubst(map[string]Term{
		"x": Var("u").Add(Var("v")),
		"y": Var("w").Neg(),
	})
	// s(2x - 3y + z) = 2u + 2v + 3w + z
	arg := Var("x").Scale(math.TWO).Sub(Var("y").Scale(math.NewInt(3))).Add(Var("z"))
	want := Var("u").Scale(math.TWO).
		Add(Var("v").Scale(math.TWO)).
		Add(Var("w").Scale(math.NewInt(3))).
		Add(Var("z"))
	if got := s.Apply(arg); !got.Equal(want) {
		t.Fatalf("got %s, expected %s", got, want)
	}
	// application is a homomorphism
	for i := 0; i < 100; i++ {
		a := rndTerm()
		b := rndTerm()
		if !s.Apply(a.Add(b)).Equal(s.Apply(a).Add(s.Apply(b))) {
			t.Fatal("apply does not distribute over +")
		}
		if !s.Apply(a.Neg()).Equal(s.Apply(a).Neg()) {
			t.Fatal("apply does not commute with negation")
		}
	}
}

func TestSubstCompose(t *testing.T) {
	s := NewSubst(map[string]Term{"x": Var("y").Scale(math.TWO)})
	o := NewSubst(map[string]Term{"y": Var("z").Neg()})
	c := s.Compose(o)
	// c(x) = o(s(x)) = -2z, c(y) = -z
	if !c.Get("x").Equal(Var("z").Scale(math.NewInt(-2))) {
		t.Fatalf("c(x) = %s", c.Get("x"))
	}
	if !c.Get("y").Equal(Var("z").Neg()) {
		t.Fatalf("c(y) = %s", c.Get("y"))
	}
	// composition agrees with sequential application
	for i := 0; i < 100; i++ {
		a := rndTerm()
		if !c.Apply(a).Equal(o.Apply(s.Apply(a))) {
			t.Fatal("compose does not match sequential application")
		}
	}
}

func TestSubstString(t *testing.T) {
	if s := NewSubst(nil).String(); s != "[]" {
		t.Fatalf("empty substitution prints '%s'", s)
	}
	s := NewSubst(map[string]Term{
		"y": Zero(),
		"x": Var("g0"),
	})
	if out := s.String(); out != "[x : g0, y : 0]" {
		t.Fatalf("got '%s'", out)
	}
}
