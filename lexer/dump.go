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
	"bufio"
	"fmt"
	"io"
)

// WriteTSV writes items to w, one per line, as tab-separated
//
//	start	end	kind	value
//
// where start and end are line:column locations. Error items use the kind
// "error" and the error's name as the value.
func WriteTSV(w io.Writer, items []Item) error {
	buf := bufio.NewWriter(w)
	for _, item := range items {
		kind, value := item.Fields()
		if _, err := fmt.Fprintf(buf, "%v\t%v\t%s\t%s\n", item.Span.Start, item.Span.End, kind, value); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// Fields returns the kind and value columns used to dump this item.
func (i Item) Fields() (kind, value string) {
	if i.IsError() {
		return "error", i.Err.String()
	}
	return i.Token.Kind.String(), i.Token.Value()
}
