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

package corelib

import (
	"bufio"
	"fmt"
	"os"

	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/printer"
	"github.com/haliteware/malgo/reader"
	"github.com/haliteware/malgo/types"
)

// stdinLines is created at package initialization and shared by every
// readline call. It is separate from the REPL's own scanner; each of the
// two buffers stdin independently.
var stdinLines = bufio.NewScanner(os.Stdin)

func stringIOEntries() []entry {
	return []entry{
		{"pr-str", prStrNative},
		{"str", strNative},
		{"prn", prn},
		{"println", println_},
		{"read-string", readString},
		{"slurp", slurp},
		{"readline", readline},
	}
}

func prStrNative(args []types.Value) (types.Value, error) {
	return types.String(printer.Join(args, true, " ")), nil
}

func strNative(args []types.Value) (types.Value, error) {
	return types.String(printer.Join(args, false, "")), nil
}

func prn(args []types.Value) (types.Value, error) {
	fmt.Println(printer.Join(args, true, " "))
	return types.NilValue, nil
}

func println_(args []types.Value) (types.Value, error) {
	fmt.Println(printer.Join(args, false, " "))
	return types.NilValue, nil
}

func readString(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("read-string", "1", len(args))
	}
	s, ok := args[0].(types.String)
	if !ok {
		return nil, typeError("read-string", "String", args[0])
	}
	v, err := reader.ReadStr(string(s))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func slurp(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("slurp", "1", len(args))
	}
	path, ok := args[0].(types.String)
	if !ok {
		return nil, typeError("slurp", "String", args[0])
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, errs.WrapHostError(err, "slurp failed")
	}
	return types.String(data), nil
}

// readline prints a prompt and reads one line from stdin; Nil at EOF.
func readline(args []types.Value) (types.Value, error) {
	if len(args) > 1 {
		return nil, arityError("readline", "0 or 1", len(args))
	}
	if len(args) == 1 {
		prompt, ok := args[0].(types.String)
		if !ok {
			return nil, typeError("readline", "String prompt", args[0])
		}
		fmt.Print(string(prompt))
	}
	if !stdinLines.Scan() {
		if err := stdinLines.Err(); err != nil {
			return nil, errs.WrapHostError(err, "readline failed")
		}
		return types.NilValue, nil
	}
	return types.String(stdinLines.Text()), nil
}
