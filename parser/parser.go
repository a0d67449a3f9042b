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

// Package parser reads terms and equations in surface syntax:
//
//	term     := ['+'|'-'] factor { ('+'|'-') factor }
//	factor   := number | number name | number group | name | group
//	group    := '(' term ')'
//
// A name starts with a letter followed by letters or digits; a bare
// number is only valid if it is 0. All terms are built through the
// algebra constructors, so parsed terms are always canonical.
package parser

import (
	"errors"

	"github.com/bfix/agum/algebra"
	"github.com/bfix/agum/math"
	gerr "github.com/bfix/gospel/errors"
)

// ErrParse signals invalid surface syntax.
var ErrParse = errors.New("parse error")

// token kinds
const (
	tokEOF = iota
	tokNum
	tokName
	tokPlus
	tokMinus
	tokLParen
	tokRParen
	tokEqual
)

type token struct {
	kind int
	text string
	pos  int
}

//----------------------------------------------------------------------

// ParseTerm reads a single term from a string.
func ParseTerm(s string) (algebra.Term, error) {
	p, err := newParser(s)
	if err != nil {
		return algebra.Term{}, err
	}
	t, err := p.term()
	if err != nil {
		return algebra.Term{}, err
	}
	if err = p.expect(tokEOF); err != nil {
		return algebra.Term{}, err
	}
	return t, nil
}

// ParseEquation reads an equation "term = term" from a string.
func ParseEquation(s string) (algebra.Equation, error) {
	p, err := newParser(s)
	if err != nil {
		return algebra.Equation{}, err
	}
	lhs, err := p.term()
	if err != nil {
		return algebra.Equation{}, err
	}
	if err = p.expect(tokEqual); err != nil {
		return algebra.Equation{}, err
	}
	rhs, err := p.term()
	if err != nil {
		return algebra.Equation{}, err
	}
	if err = p.expect(tokEOF); err != nil {
		return algebra.Equation{}, err
	}
	return algebra.Equation{Lhs: lhs, Rhs: rhs}, nil
}

//----------------------------------------------------------------------

type parser struct {
	toks []token
	pos  int
}

func newParser(s string) (*parser, error) {
	toks, err := scan(s)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks}, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind int) error {
	t := p.next()
	if t.kind != kind {
		if t.kind == tokEOF {
			return gerr.New(ErrParse, "unexpected end of input")
		}
		return gerr.New(ErrParse, "unexpected '%s' at position %d", t.text, t.pos+1)
	}
	return nil
}

// term parses a signed sum of factors.
func (p *parser) term() (algebra.Term, error) {
	neg := false
	switch p.peek().kind {
	case tokPlus:
		p.next()
	case tokMinus:
		p.next()
		neg = true
	}
	t, err := p.factor(neg)
	if err != nil {
		return algebra.Term{}, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			neg = false
		case tokMinus:
			neg = true
		default:
			return t, nil
		}
		p.next()
		f, err := p.factor(neg)
		if err != nil {
			return algebra.Term{}, err
		}
		t = t.Add(f)
	}
}

// factor parses one summand; neg carries the sign of the preceding
// separator.
func (p *parser) factor(neg bool) (algebra.Term, error) {
	tok := p.next()
	switch tok.kind {
	case tokNum:
		n := math.NewIntFromString(tok.text)
		if neg {
			n = n.Neg()
		}
		switch p.peek().kind {
		case tokName:
			v := p.next()
			return algebra.Var(v.text).Scale(n), nil
		case tokLParen:
			g, err := p.group()
			if err != nil {
				return algebra.Term{}, err
			}
			return g.Scale(n), nil
		}
		// a bare number denotes a term only if it is 0
		if n.Sign() != 0 {
			return algebra.Term{}, gerr.New(ErrParse, "number '%s' without variable at position %d", tok.text, tok.pos+1)
		}
		return algebra.Zero(), nil
	case tokName:
		t := algebra.Var(tok.text)
		if neg {
			t = t.Neg()
		}
		return t, nil
	case tokLParen:
		p.pos-- // group consumes the parenthesis
		g, err := p.group()
		if err != nil {
			return algebra.Term{}, err
		}
		if neg {
			g = g.Neg()
		}
		return g, nil
	case tokEOF:
		return algebra.Term{}, gerr.New(ErrParse, "unexpected end of input")
	}
	return algebra.Term{}, gerr.New(ErrParse, "unexpected '%s' at position %d", tok.text, tok.pos+1)
}

// group parses a parenthesized term.
func (p *parser) group() (algebra.Term, error) {
	if err := p.expect(tokLParen); err != nil {
		return algebra.Term{}, err
	}
	t, err := p.term()
	if err != nil {
		return algebra.Term{}, err
	}
	if err = p.expect(tokRParen); err != nil {
		return algebra.Term{}, err
	}
	return t, nil
}
