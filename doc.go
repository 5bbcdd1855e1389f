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

// Package etxe is the root of the etxe toolchain, a set of tools for the etxe
// infrastructure configuration language.
//
// The packages are layered as follows:
//
//   - source: locations, spans and files with line indexes.
//   - token: the token kinds of the language and their payloads.
//   - lexer: the context-sensitive lexer, which turns text into items and
//     diagnostics.
//   - report: rendering of diagnostics for users.
//   - scan: discovery and parallel lexing of the files in a project.
//   - config: the .etxe.yaml project configuration.
//
// The etxe command in cmd/etxe ties these together.
package etxe
