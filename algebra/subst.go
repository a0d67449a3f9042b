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
)

// Subst is a substitution: a mapping from variable names to terms that
// is the identity outside its domain. A binding x -> 0 is meaningful
// (it eliminates x); a binding x -> x is the identity and is never
// stored. Substitutions are immutable values.
type Subst struct {
	bind map[string]Term
}

// NewSubst builds a substitution from explicit bindings. Identity
// maplets are elided.
func NewSubst(binds map[string]Term) Subst {
	bind := make(map[string]Term, len(binds))
	for x, t := range binds {
		if t.Equal(Var(x)) {
			continue
		}
		bind[x] = t
	}
	return Subst{bind: bind}
}

// Get returns the replacement term for a variable; variables outside
// the domain map to themselves.
func (s Subst) Get(x string) Term {
	if t, ok := s.bind[x]; ok {
		return t
	}
	return Var(x)
}

// Domain returns the bound variable names in ascending order.
func (s Subst) Domain() []string {
	dom := make([]string, 0, len(s.bind))
	for x := range s.bind {
		dom = append(dom, x)
	}
	sort.Strings(dom)
	return dom
}

// Apply extends a substitution homomorphically to a term.
func (s Subst) Apply(t Term) Term {
	res := Zero()
	for _, a := range t.Assocs() {
		res = res.Add(s.Get(a.Name).Scale(a.Coeff))
	}
	return res
}

// Compose returns the substitution outer*s mapping every variable x
// to outer applied to s(x).
func (s Subst) Compose(outer Subst) Subst {
	bind := make(map[string]Term)
	for x := range s.bind {
		bind[x] = outer.Apply(s.bind[x])
	}
	for x, t := range outer.bind {
		if _, ok := bind[x]; !ok {
			bind[x] = t
		}
	}
	return NewSubst(bind)
}

// Equal checks two substitutions for equality.
func (s Subst) Equal(o Subst) bool {
	if len(s.bind) != len(o.bind) {
		return false
	}
	for x, t := range s.bind {
		u, ok := o.bind[x]
		if !ok || !t.Equal(u) {
			return false
		}
	}
	return true
}

// String returns a substitution as a bracketed list of maplets in
// ascending variable order.
func (s Subst) String() string {
	b := new(strings.Builder)
	b.WriteString("[")
	for i, x := range s.Domain() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x)
		b.WriteString(" : ")
		b.WriteString(s.bind[x].String())
	}
	b.WriteString("]")
	return b.String()
}
