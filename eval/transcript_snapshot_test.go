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

package eval_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestTranscriptSnapshot pins seven end-to-end REPL scenarios (arithmetic
// and let, closure capture, quasiquote/unquote, splice-unquote, atom swap,
// try/catch, and the cond macro) as a single golden transcript, one
// "input => output" line per form.
func TestTranscriptSnapshot(t *testing.T) {
	e := newTestEnv(t)
	var lines []string
	eval := func(src string) {
		out, err := evalString(t, e, src)
		if err != nil {
			lines = append(lines, src+" => ERROR: "+err.Error())
			return
		}
		lines = append(lines, src+" => "+out)
	}

	eval(`(let* (a 1 b 2) (+ a b))`)
	eval(`(def! mk (fn* (a) (fn* (b) (+ a b))))`)
	eval(`((mk 10) 5)`)
	eval("`(1 ~(+ 1 1) 3)")
	eval(`(def! xs (list 2 3))`)
	eval("`(1 ~@xs 4)")
	eval(`(def! a (atom 1))`)
	eval(`(swap! a (fn* (x) (+ x 10)))`)
	eval(`(deref a)`)
	eval(`(try* (throw "bad") (catch* e (str "caught " e)))`)
	eval(`(cond false 1 true 2)`)
	eval(`(cond false 1)`)

	snaps.MatchSnapshot(t, strings.Join(lines, "\n"))
}
