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
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/lang/mal"
	"github.com/haliteware/malgo/printer"
)

// runREPL implements the no-argument CLI mode: a banner, then repeated
// prompt/read/eval/print over stdin until EOF.
func runREPL(e *env.Environment) error {
	fmt.Printf("Mal [%s]\n", mal.HostLanguage)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("user> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil // EOF on stdin: exit 0
		}
		line := scanner.Text()

		v, err := mal.EvalString(line, e)
		if err != nil {
			var noInput *errs.NoInput
			if errors.As(err, &noInput) {
				continue
			}
			fmt.Printf("Error: %s\n", err)
			continue
		}
		fmt.Println(printer.PrStr(v, true))
	}
}
