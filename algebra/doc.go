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

// Package algebra implements unification and matching in the free
// Abelian group over a set of variables. Terms are canonical integer
// coefficient vectors; an equation between terms reduces to a single
// linear Diophantine equation whose parametric solution is lifted back
// into a most general substitution.
//
// Matching (Match) maps the left side of an equation onto the right
// side and can fail; unification (Unify) equates both sides and always
// succeeds. All values are immutable and all operations are pure.
package algebra
