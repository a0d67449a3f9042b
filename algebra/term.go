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
	"sort"
	"strings"
	"unicode"

	"github.com/bfix/agum/math"
)

// Term is an element of the free Abelian group over variable names,
// kept in canonical form: a finite map from names to non-zero integer
// coefficients. The empty map is the group identity 0. Terms are
// immutable values; operations return new terms and never store a
// zero coefficient.
type Term struct {
	coeff map[string]*math.Int
}

// Assoc is a single (variable,coefficient) entry of a term.
type Assoc struct {
	Name  string
	Coeff *math.Int
}

// IsName checks the variable predicate: a non-empty string with an
// alphabetic first character and an alphanumeric remainder.
func IsName(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
		} else if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// Zero returns the group identity.
func Zero() Term {
	return Term{}
}

// Var returns the term 1*x. The algebra tolerates any non-empty name;
// the surface layer restricts names to the IsName predicate.
func Var(x string) Term {
	if len(x) == 0 {
		panic("empty variable name")
	}
	return Term{coeff: map[string]*math.Int{x: math.ONE}}
}

// FromAssocs builds a term from (variable,coefficient) pairs in any
// order. Zero coefficients are eliminated; repeated names accumulate.
func FromAssocs(pairs []Assoc) Term {
	t := Zero()
	for _, p := range pairs {
		t = t.Add(Var(p.Name).Scale(p.Coeff))
	}
	return t
}

// Assocs returns the entries of a term in ascending variable order.
func (t Term) Assocs() []Assoc {
	as := make([]Assoc, 0, len(t.coeff))
	for x, c := range t.coeff {
		as = append(as, Assoc{Name: x, Coeff: c})
	}
	sort.Slice(as, func(i, j int) bool {
		return as[i].Name < as[j].Name
	})
	return as
}

// IsZero checks a term for the group identity.
func (t Term) IsZero() bool {
	return len(t.coeff) == 0
}

// Equal checks two terms for (structural) equality.
func (t Term) Equal(u Term) bool {
	if len(t.coeff) != len(u.coeff) {
		return false
	}
	for x, c := range t.coeff {
		d, ok := u.coeff[x]
		if !ok || !c.Equals(d) {
			return false
		}
	}
	return true
}

// Coeff returns the coefficient of a variable in a term (0 if the
// variable does not occur).
func (t Term) Coeff(x string) *math.Int {
	if c, ok := t.coeff[x]; ok {
		return c
	}
	return math.ZERO
}

// Scale multiplies every coefficient of a term by n.
func (t Term) Scale(n *math.Int) Term {
	if n.Sign() == 0 {
		return Zero()
	}
	if n.Equals(math.ONE) {
		return t
	}
	coeff := make(map[string]*math.Int, len(t.coeff))
	for x, c := range t.coeff {
		coeff[x] = c.Mul(n)
	}
	return Term{coeff: coeff}
}

// Neg returns the group inverse of a term.
func (t Term) Neg() Term {
	return t.Scale(math.ONE.Neg())
}

// Add returns the sum of two terms; coefficients that cancel are
// removed from the result.
func (t Term) Add(u Term) Term {
	coeff := make(map[string]*math.Int, len(t.coeff)+len(u.coeff))
	for x, c := range t.coeff {
		coeff[x] = c
	}
	for x, c := range u.coeff {
		s := c
		if d, ok := coeff[x]; ok {
			s = d.Add(c)
		}
		if s.Sign() == 0 {
			delete(coeff, x)
		} else {
			coeff[x] = s
		}
	}
	if len(coeff) == 0 {
		return Zero()
	}
	return Term{coeff: coeff}
}

// Sub returns the difference of two terms.
func (t Term) Sub(u Term) Term {
	return t.Add(u.Neg())
}

// String returns a term in surface syntax: signed factors in ascending
// variable order, coefficients 1 and -1 reduced to the sign.
func (t Term) String() string {
	as := t.Assocs()
	if len(as) == 0 {
		return "0"
	}
	b := new(strings.Builder)
	for i, a := range as {
		neg := a.Coeff.Sign() < 0
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if c := a.Coeff.Abs(); !c.Equals(math.ONE) {
			b.WriteString(c.String())
		}
		b.WriteString(a.Name)
	}
	return b.String()
}

//----------------------------------------------------------------------

// Equation is an ordered pair of terms.
type Equation struct {
	Lhs, Rhs Term
}

// String returns an equation in surface syntax.
func (eq Equation) String() string {
	return eq.Lhs.String() + " = " + eq.Rhs.String()
}
