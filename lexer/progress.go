// Copyright 2022-2025 Hexbee
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

package lexer

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// mustProgress is a helper for ensuring that every pull either consumes
// input or changes the context stack. This is intended for turning infinite
// loops into panics.
type mustProgress struct {
	l             *Lexer
	offset, depth int
}

// mustProgress returns a progress checker for this lexer.
func (l *Lexer) mustProgress() mustProgress {
	return mustProgress{l, l.commit.Offset, l.contexts.Depth()}
}

// check panics if the lexer has not advanced since mp was created. The
// end-of-input item is exempt, since it is produced forever.
func (mp mustProgress) check(item Item) {
	if item.IsEOF() {
		return
	}
	if mp.offset == mp.l.commit.Offset && mp.depth == mp.l.contexts.Depth() {
		panic(fmt.Sprintf(
			"lexer: failed to make progress at %v producing %v; this is a bug in etxe\ncontexts: %s",
			mp.l.commit, item, spew.Sdump(mp.l.contexts.stack),
		))
	}
}
