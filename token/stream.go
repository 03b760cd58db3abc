// Copyright 2020-2024 Buf Technologies, Inc.
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

package token

// Stream is the intermediate representation the engine operates over: a
// flat, append-only sequence of [Token]s produced by a token builder (out
// of scope for this package; see [Stream.Validate] for the contract it must
// honor) and consumed, unmutated, by the length scanner and the printer.
//
// Stream is just a []Token, not a tree of matched delimiter tokens: the
// producer contract only requires Open/Close and Break(Open)/Break(Close)
// markers to nest correctly inside a linear sequence, not a tree the
// consumer must walk recursively.
type Stream struct {
	tokens []Token
}

// NewStream constructs an empty Stream.
func NewStream() *Stream {
	return &Stream{}
}

// Push appends a token to the end of the stream and returns its index.
func (s *Stream) Push(t Token) int {
	s.tokens = append(s.tokens, t)
	return len(s.tokens) - 1
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i.
func (s *Stream) At(i int) Token {
	return s.tokens[i]
}

// Set replaces the token at index i, e.g. to backfill a synthesized
// token's SourceLine once its neighbor's is known.
func (s *Stream) Set(i int, t Token) {
	s.tokens[i] = t
}

// All returns an iterator over (index, token) pairs, in stream order.
func (s *Stream) All() func(yield func(int, Token) bool) {
	return func(yield func(int, Token) bool) {
		for i, t := range s.tokens {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Validate checks the producer-contract invariants that can be verified
// independent of any particular scan: Open/Close balance, and
// Break(Open)/Break(Close) balance. It does not check that the two
// nestings are mutually consistent; they are allowed to interleave without
// coinciding.
//
// Returns ok == false and the offending index/kind on the first violation
// found.
func (s *Stream) Validate() (index int, kind Kind, ok bool) {
	var opens, breakOpens int
	for i, t := range s.tokens {
		switch t.Kind() {
		case Open:
			opens++
		case Close:
			opens--
			if opens < 0 {
				return i, Close, false
			}
		case Break:
			switch t.BreakKind() {
			case BreakOpen:
				breakOpens++
			case BreakClose:
				breakOpens--
				if breakOpens < 0 {
					return i, Break, false
				}
			}
		}
	}
	if opens != 0 {
		return len(s.tokens), Open, false
	}
	if breakOpens != 0 {
		return len(s.tokens), Break, false
	}
	return -1, 0, true
}
