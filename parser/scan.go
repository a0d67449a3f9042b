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

package parser

import (
	"unicode"

	gerr "github.com/bfix/gospel/errors"
)

// scan splits a line into tokens; the token list always ends with
// tokEOF. Positions count runes from the start of the line.
func scan(s string) (toks []token, err error) {
	in := []rune(s)
	pos := 0
	for pos < len(in) {
		r := in[pos]
		switch {
		case unicode.IsSpace(r):
			pos++
		case r == '+':
			toks = append(toks, token{tokPlus, "+", pos})
			pos++
		case r == '-':
			toks = append(toks, token{tokMinus, "-", pos})
			pos++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", pos})
			pos++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", pos})
			pos++
		case r == '=':
			toks = append(toks, token{tokEqual, "=", pos})
			pos++
		case unicode.IsDigit(r):
			start := pos
			for pos < len(in) && unicode.IsDigit(in[pos]) {
				pos++
			}
			toks = append(toks, token{tokNum, string(in[start:pos]), start})
		case unicode.IsLetter(r):
			start := pos
			for pos < len(in) && (unicode.IsLetter(in[pos]) || unicode.IsDigit(in[pos])) {
				pos++
			}
			toks = append(toks, token{tokName, string(in[start:pos]), start})
		default:
			return nil, gerr.New(ErrParse, "invalid character '%c' at position %d", r, pos+1)
		}
	}
	toks = append(toks, token{tokEOF, "", pos})
	return toks, nil
}
