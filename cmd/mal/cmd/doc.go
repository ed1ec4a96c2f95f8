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

// Package cmd wires the mal command-line tool: a Cobra root command that
// either starts the REPL or loads a file.
//
// Usage:
//
//	mal [flags] [file] [args...]
//
//	--config string   path to a YAML config file (preload files, history path)
//	--debug           bind DEBUG-EVAL so every evaluator step is traced
package cmd
