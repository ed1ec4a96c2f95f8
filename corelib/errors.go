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
	"fmt"

	"github.com/haliteware/malgo/errs"
)

func arityError(name string, want string, got int) error {
	return errs.NewHostError(fmt.Sprintf("%s: expected %s arguments, got %d", name, want, got))
}

func typeError(name, expected string, got interface{}) error {
	return errs.NewHostError(fmt.Sprintf("%s: expected %s, got %v", name, expected, got))
}
