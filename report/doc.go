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

// Package report provides the diagnostic sink type consumed by the printer:
// a [Diagnostic] is a severity, a message, and a source [Location], built
// with a small functional-options API so callers can attach just the
// pieces that apply.
//
// This package does not render anything: rendering diagnostics to a human,
// or to an editor's problems pane, is a host/CLI concern. A [Sink] just
// accumulates [Diagnostic] values in the order they were reported.
package report
