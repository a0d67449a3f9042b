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

// Unify computes a most general unifier of an equation by matching the
// difference of its sides against 0. A single homogeneous equation
// always has a parametric solution, so a matching failure here is an
// invariant violation in the solver and fatal.
func Unify(eq Equation) Subst {
	s, err := Match(Equation{Lhs: eq.Lhs.Sub(eq.Rhs), Rhs: Zero()})
	if err != nil {
		panic("unify: matching failed on a homogeneous equation: " + err.Error())
	}
	return s
}
