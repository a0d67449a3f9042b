package main

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
	"flag"
	"fmt"
	"os"

	"github.com/bfix/agum/shell"
	"github.com/bfix/gospel/logger"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	// get command-line arguments
	var (
		level string
		quiet bool
	)
	flag.StringVar(&level, "L", "WARN", "Log level (CRITICAL,SEVERE,ERROR,WARN,INFO,DBG)")
	flag.BoolVar(&quiet, "q", false, "Suppress banner and prompt")
	flag.Parse()
	logger.SetLogLevelFromName(level)

	// only talk to humans
	prompt := ""
	if !quiet && terminal.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("agum: unification and matching in free Abelian groups")
		fmt.Println("Enter an equation, ':?' for help, ':quit' to leave.")
		prompt = "agum> "
	}
	logger.Println(logger.INFO, "[agum] session started")

	sh := shell.NewShell(os.Stdin, os.Stdout, prompt)
	if err := sh.Run(); err != nil {
		logger.Println(logger.ERROR, "[agum] "+err.Error())
		os.Exit(1)
	}
	logger.Println(logger.INFO, "[agum] session done")
}
