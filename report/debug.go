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

package report

import (
	"os"
	"strings"
)

const (
	debugOff int = iota
	debugMinimal
	debugFull
)

// debugMode is the status of the ETXE_DEBUG environment variable at startup.
//
// When it is set, every diagnostic pushed onto a [Report] records the stack
// of the code that reported it, and rendering adds that stack as "debug"
// footers. This points at the lexer check or scan step that produced a
// diagnostic. "full" renders the whole stack; any other value renders only
// the innermost frame.
var debugMode = func() int {
	switch strings.ToLower(os.Getenv("ETXE_DEBUG")) {
	case "", "0", "off", "false":
		return debugOff
	case "full":
		return debugFull
	default:
		return debugMinimal
	}
}()
