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
	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/eval"
	"github.com/haliteware/malgo/types"
)

// runFile implements the file-mode CLI path: evaluate (load-file "path")
// and propagate any error as a non-zero exit (handled by main.go).
func runFile(e *env.Environment, path string) error {
	form := types.NewList(types.NewSymbol("load-file"), types.String(path))
	_, err := eval.Eval(form, e)
	return err
}
