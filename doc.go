// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package inkfmt implements a two-pass pretty-printer in the style of
// Oppen: a length scanner measures how much horizontal space each group in
// a token stream would take if printed flat, and a printer consumes that
// measurement to decide, group by group, which breaks fire as newlines.
//
// Callers build a [token.Stream] (out of scope for this module; see the
// token package doc for the producer contract), construct a
// [printer.Context] with a [config.Configuration], and call
// [printer.Context.Print]. [Format] and [FormatAll] in this package are
// thin conveniences over that same call for single-file and batch use.
package inkfmt
