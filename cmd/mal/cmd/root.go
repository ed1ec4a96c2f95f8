// This file is part of malgo.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/eval"
	"github.com/haliteware/malgo/lang/mal"
	"github.com/haliteware/malgo/types"
)

var (
	debug      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "mal [file] [args...]",
	Short: "Mal language REPL and file-mode interpreter",
	Long: `mal is a tree-walking interpreter for the Mal language: a reader,
an environment-threading evaluator with tail-call optimization, closures,
macros, and a core namespace of built-in operations.

With no file argument, mal starts an interactive REPL. With a file
argument, it loads and evaluates that file, binding any further arguments
to *ARGV*.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "bind DEBUG-EVAL so every evaluator step is traced")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (preload files, history path)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(_ *cobra.Command, args []string) error {
	var argv []string
	if len(args) > 1 {
		argv = args[1:]
	}

	rootEnv, err := mal.New(argv)
	if err != nil {
		return err
	}
	if debug {
		rootEnv.Set("DEBUG-EVAL", types.True)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := preload(rootEnv, cfg.Preload); err != nil {
		return err
	}

	if len(args) == 0 {
		return runREPL(rootEnv)
	}
	return runFile(rootEnv, args[0])
}

func preload(e *env.Environment, files []string) error {
	for _, f := range files {
		form := types.NewList(types.NewSymbol("load-file"), types.String(f))
		if _, err := eval.Eval(form, e); err != nil {
			return err
		}
	}
	return nil
}
