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

// Package token provides the intermediate representation the
// pretty-printing engine operates over: a flat [Stream] of [Token]s
// carrying grouping and spacing hints, plus the [Comment] and [Verbatim]
// payload types those tokens can carry.
//
// # Token stream producer contract
//
// Building a Stream — walking a parsed syntax tree and deciding where
// groups, breaks, and comments go — is the responsibility of a collaborator
// outside this package (the "token builder"). This package only defines the
// wire format between that producer and the printer packages, and the
// invariants the producer must uphold:
//
//   - every [Open] is matched by exactly one [Close]; nesting is balanced.
//   - Break(BreakOpen)/Break(BreakClose) form a separately balanced,
//     possibly-nested structure that need not coincide with Open/Close.
//   - a Comment with WasEndOfLine() true is placed on the line of the
//     preceding code token.
//
// [Stream.Validate] checks the two balance invariants mechanically; it
// cannot check producer-specific semantic invariants like comment
// placement.
package token
