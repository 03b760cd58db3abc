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

package printer

import (
	"fmt"

	"github.com/inkfmt/inkfmt/token"
)

// StructuralError reports a violation of the token-stream producer
// contract: an unmatched Close, an unclosed Open at end of stream, or a
// scanner/printer stack underflow. These are programmer errors in the
// token builder, not user-facing failures, and the engine never tries to
// recover from one — any output produced past this point would be
// meaningless.
type StructuralError struct {
	TokenIndex int
	TokenKind  token.Kind
	Message    string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("inkfmt/printer: %s (token %d, kind %v)", e.Message, e.TokenIndex, e.TokenKind)
}

func fail(index int, kind token.Kind, message string) {
	panic(&StructuralError{TokenIndex: index, TokenKind: kind, Message: message})
}
