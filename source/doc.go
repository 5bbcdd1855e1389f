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

// Package source provides the position model shared by the etxe lexer and
// its diagnostics.
//
// [Location] is a point in a text, tracked incrementally by the lexer as it
// consumes characters. [Span] is a range between two locations, and
// [Positioned] attaches a span to a value such as a token or an error. [File]
// is a source file with a lazily built line index, for recovering locations
// from raw byte offsets.
package source
