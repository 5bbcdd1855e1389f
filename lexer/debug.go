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

	"github.com/petermattis/goid"
	"github.com/sirupsen/logrus"
)

// checkOwner panics if this lexer is pulled from a goroutine other than the
// one that first pulled from it.
func (l *Lexer) checkOwner() {
	id := goid.Get()
	if l.owner == 0 {
		l.owner = id
		return
	}
	if l.owner != id {
		panic(fmt.Sprintf("lexer: pulled from goroutine %d, but owned by goroutine %d", id, l.owner))
	}
}

// trace logs an item that is about to be returned.
func (l *Lexer) trace(item Item) {
	fields := logrus.Fields{
		"span":    item.Span,
		"context": l.contexts.Current(),
		"depth":   l.contexts.Depth(),
	}
	if item.IsError() {
		fields["error"] = item.Err.String()
	} else {
		fields["token"] = item.Token
	}
	l.logger.WithFields(fields).Debug("lexer: item")
}
