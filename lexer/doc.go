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

// Package lexer implements the context-sensitive lexer for etxe source.
//
// A [Lexer] is pulled one [Item] at a time. Which rules apply depends on a
// stack of contexts: ordinary code, a quoted string, a heredoc body, or an
// expression embedded in a string with ${...} or %{...}.
//
// Errors come in two tiers. Errors that leave the shape of the token intact,
// such as an out of range number or a bad escape, are recorded as
// [Diagnostic]s and a placeholder token is still produced. All other errors
// are returned in place of a token, as an [Item] with Err set; lexing resumes
// right after the offending text.
//
// Locations are tracked as line, column and byte offset. Columns count
// Unicode code points, and a byte that is not valid UTF-8 counts as one.
package lexer
