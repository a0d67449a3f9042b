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

// Package shell implements the interactive read-eval-print loop: one
// equation per line, answered with the parsed equation, its unifier
// and its matcher.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bfix/agum/algebra"
	"github.com/bfix/agum/parser"
	"github.com/bfix/gospel/logger"
)

const usage = `Enter an equation like '2x + y = 3z' to compute its most general
unifier and matcher. Commands:
    :?  :help    show this text
    :quit        leave the shell (or end input)`

// Shell reads equations line by line and prints unification and
// matching results. It keeps no state between lines.
type Shell struct {
	in     io.Reader
	out    io.Writer
	prompt string // empty when non-interactive
}

// NewShell wraps an input and an output stream. The prompt is only
// printed when non-empty.
func NewShell(in io.Reader, out io.Writer, prompt string) *Shell {
	return &Shell{
		in:     in,
		out:    out,
		prompt: prompt,
	}
}

// Run processes lines until ':quit' or end of input. Malformed lines
// are reported and skipped; the session continues.
func (sh *Shell) Run() error {
	rdr := bufio.NewScanner(sh.in)
	for {
		if len(sh.prompt) > 0 {
			fmt.Fprint(sh.out, sh.prompt)
		}
		if !rdr.Scan() {
			return rdr.Err()
		}
		line := strings.TrimSpace(rdr.Text())
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if sh.command(line) {
				return nil
			}
			continue
		}
		sh.process(line)
	}
}

// command handles a ':'-prefixed input line; it returns true when the
// session is over.
func (sh *Shell) command(line string) bool {
	switch line {
	case ":?", ":help":
		fmt.Fprintln(sh.out, usage)
	case ":quit":
		return true
	default:
		fmt.Fprintf(sh.out, "unknown command '%s' -- try ':?'\n", line)
	}
	return false
}

// process answers a single equation line.
func (sh *Shell) process(line string) {
	eq, err := parser.ParseEquation(line)
	if err != nil {
		logger.Printf(logger.ERROR, "[shell] %s\n", err.Error())
		fmt.Fprintf(sh.out, "error: %s\n", err)
		return
	}
	logger.Printf(logger.DBG, "[shell] solving %s\n", eq)
	fmt.Fprintln(sh.out, eq)
	fmt.Fprintf(sh.out, "Unifier: %s\n", algebra.Unify(eq))
	if s, err := algebra.Match(eq); err != nil {
		if !errors.Is(err, algebra.ErrNoSolution) {
			logger.Printf(logger.ERROR, "[shell] %s\n", err.Error())
		}
		fmt.Fprintln(sh.out, "Matcher: no solution")
	} else {
		fmt.Fprintf(sh.out, "Matcher: %s\n", s)
	}
}
