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

// Package printer renders Mal values back to text, in both a "readable"
// mode (read(pr_str(v, true)) == v, for all v without functions or atoms)
// and an unreadable display mode used by str/println.
package printer

import (
	"strings"

	"github.com/haliteware/malgo/types"
)

// PrStr renders v. In readable mode, String values are quoted and
// escaped; in unreadable mode they are emitted as raw bytes.
func PrStr(v types.Value, readable bool) string {
	switch x := v.(type) {
	case types.String:
		if !readable {
			return string(x)
		}
		return quoteString(string(x))
	case *types.List:
		return wrapSeq("(", ")", x.Elems, readable)
	case *types.Vector:
		return wrapSeq("[", "]", x.Elems, readable)
	case *types.HashMap:
		return wrapHashMap(x, readable)
	case *types.Atom:
		return "(atom " + PrStr(x.Value, readable) + ")"
	case *types.ExceptionWrapper:
		return PrStr(x.Payload, readable)
	default:
		// Nil, Boolean, Number, Symbol, Keyword, Function, NativeFunction
		// all have stable String() forms that don't depend on readable.
		return v.String()
	}
}

func wrapSeq(open, close string, elems []types.Value, readable bool) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(PrStr(e, readable))
	}
	sb.WriteString(close)
	return sb.String()
}

func wrapHashMap(m *types.HashMap, readable bool) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.Order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(PrStr(k.Value(), readable))
		sb.WriteByte(' ')
		sb.WriteString(PrStr(m.Entries[k], readable))
	}
	sb.WriteByte('}')
	return sb.String()
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Join renders each value with PrStr and joins with sep -- the shared
// implementation behind the core namespace's pr-str/str.
func Join(vals []types.Value, readable bool, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = PrStr(v, readable)
	}
	return strings.Join(parts, sep)
}
