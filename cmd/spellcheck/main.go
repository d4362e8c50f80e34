// Copyright 2026 The Spellkern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// spellcheck is a command line front end for the spell package: it loads a
// Hunspell-compatible affix/dictionary pair and lets the caller check words,
// ask for suggestions, inspect summary stats, or drive an interactive
// terminal session.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/spellkern/spellkern/spell"
)

var _version = "dev"

type versionFlag bool

func (versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, "spellcheck", _version)
	app.Exit(0)
	return nil
}

type globalOptions struct {
	Aff string `name:"aff" short:"a" required:"" help:"Path to the .aff affix file" type:"existingfile"`
	Dic string `name:"dic" short:"d" required:"" help:"Path to the .dic dictionary file" type:"existingfile"`

	FlagOverrides string `name:"overrides" help:"Path to a JSON file of named-setting overrides applied when the affix file is silent"`
	MaxDepth      int    `name:"max-depth" default:"8" help:"Maximum affix continuation recursion depth"`
	NoColor       bool   `name:"no-color" help:"Disable colored output even on a terminal"`
}

type rootCmd struct {
	globalOptions

	Version versionFlag `help:"Print version information and quit"`

	Check       checkCmd       `cmd:"" help:"Check whether a word is accepted by the dictionary"`
	Suggest     suggestCmd     `cmd:"" help:"Suggest corrections for a misspelled word"`
	Stats       statsCmd       `cmd:"" help:"Print summary statistics for the loaded dictionary"`
	Fuzzy       fuzzyCmd       `cmd:"" help:"Fuzzy-search the dictionary's surface forms"`
	Batch       batchCmd       `cmd:"" help:"Check every shell-split word of each line read from stdin"`
	Interactive interactiveCmd `cmd:"" aliases:"i" help:"Run an interactive spellcheck session"`
}

func (cmd *rootCmd) AfterApply(kctx *kong.Context) error {
	dict, err := loadDictionary(cmd.globalOptions)
	if err != nil {
		return err
	}
	kctx.Bind(dict)
	kctx.Bind(newStyle(os.Stdout, cmd.NoColor))
	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		cancel()
	}()

	var cmd rootCmd
	kctx := kong.Parse(
		&cmd,
		kong.Name("spellcheck"),
		kong.Description("spellcheck loads a Hunspell-compatible affix/dictionary pair and checks words against it."),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(kctx.Run())
}
