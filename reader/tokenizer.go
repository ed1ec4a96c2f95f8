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

package reader

import (
	"github.com/dlclark/regexp2"

	"github.com/haliteware/malgo/errs"
)

// tokenPattern is the canonical Mal token grammar, expressed as a single
// backtracking regex against regexp2.Regexp rather than hand-rolled
// scanning, matching the alternation structure almost literally:
//
//	~@                         splice-unquote literal
//	[\[\]{}()'`~^@]            single-character tokens
//	"(?:\\.|[^\\"])*"?         double-quoted string (closing quote optional
//	                           in the match so an unterminated string can
//	                           still be detected and reported as an error)
//	;.*                        a comment, to end of line
//	[^\s\[\]{}('"`,;)]*        a bare atom run
//
// Leading [\s,]* consumes (and discards) whitespace and commas between
// tokens.
const tokenPattern = `[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`

var tokenRegexp = regexp2.MustCompile(tokenPattern, regexp2.None)

// Token is one lexical token together with the byte offset its first
// character appears at in the source (used for Syntax error reporting).
type Token struct {
	Text   string
	Offset int
}

// tokenize splits src into tokens per tokenPattern. Empty atom-run matches
// at end of input are dropped; they are an artifact of the trailing `*`
// alternative matching zero characters.
func tokenize(src string) ([]Token, error) {
	var tokens []Token
	m, err := tokenRegexp.FindStringMatch(src)
	for m != nil {
		if err != nil {
			return nil, errs.WrapHostError(err, "tokenizer failed")
		}
		g := m.GroupByNumber(1)
		if g != nil && len(g.Captures) > 0 {
			text := g.Captures[0].String()
			// Comments carry no form and are dropped here, same as
			// whitespace, rather than surfaced as a token the parser must
			// special-case.
			if text != "" && text[0] != ';' {
				tokens = append(tokens, Token{Text: text, Offset: g.Captures[0].Index})
			}
		}
		m, err = tokenRegexp.FindNextMatch(m)
	}
	if err != nil {
		return nil, errs.WrapHostError(err, "tokenizer failed")
	}
	return tokens, nil
}

// cursor is a peekable view over a token slice.
type cursor struct {
	tokens []Token
	pos    int
}

func (c *cursor) peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (Token, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

func (c *cursor) lastOffset() int {
	if len(c.tokens) == 0 {
		return 0
	}
	if c.pos >= len(c.tokens) {
		last := c.tokens[len(c.tokens)-1]
		return last.Offset + len(last.Text)
	}
	return c.tokens[c.pos].Offset
}
