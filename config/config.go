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

// Package config defines the [Configuration] value object the printer is
// built with. Reading a configuration file from disk, or parsing CLI flags
// into one, is a host concern; this package only gives the value object a
// round-trippable YAML shape via gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inkfmt/inkfmt/indent"
)

// Configuration describes line length, indentation, and the rule toggles
// the printer consults.
type Configuration struct {
	// LineLength is the soft target column budget.
	LineLength int `yaml:"lineLength"`

	// Indentation is the single indent unit pushed per nesting level.
	Indentation indent.Unit `yaml:"indentation"`

	// TabWidth is the visual width of a tab for measurement purposes.
	TabWidth int `yaml:"tabWidth"`

	// MaximumBlankLines is the maximum number of consecutive blank lines
	// preserved between two tokens (two newlines == one blank line).
	MaximumBlankLines int `yaml:"maximumBlankLines"`

	// RespectsExistingLineBreaks gates preservation of discretionary
	// newlines; when false, Newlines tokens with Discretionary() true are
	// treated as if they requested exactly one newline.
	RespectsExistingLineBreaks bool `yaml:"respectsExistingLineBreaks"`

	// ReflowDocComments enables the Markdown reflow pass for DocLine
	// comments.
	ReflowDocComments bool `yaml:"reflowDocComments"`

	// LineBreakBeforeControlFlowKeywords, LineBreakBeforeEachArgument, and
	// LineBreakBeforeEachGenericRequirement are consumed by the token
	// builder, not by the engine; they are carried here only so a single
	// Configuration value can be handed to both.
	LineBreakBeforeControlFlowKeywords    bool `yaml:"lineBreakBeforeControlFlowKeywords"`
	LineBreakBeforeEachArgument           bool `yaml:"lineBreakBeforeEachArgument"`
	LineBreakBeforeEachGenericRequirement bool `yaml:"lineBreakBeforeEachGenericRequirement"`

	// Rules maps a rule name to whether it's enabled; consumed outside the
	// engine.
	Rules map[string]bool `yaml:"rules"`
}

// configShadow mirrors Configuration but with Indentation rendered as its
// YAML-friendly string form; it exists purely to drive MarshalYAML and
// UnmarshalYAML without reimplementing every field by hand.
type configShadow struct {
	LineLength                             int             `yaml:"lineLength"`
	Indentation                            string          `yaml:"indentation"`
	TabWidth                                int             `yaml:"tabWidth"`
	MaximumBlankLines                      int             `yaml:"maximumBlankLines"`
	RespectsExistingLineBreaks             bool            `yaml:"respectsExistingLineBreaks"`
	ReflowDocComments                      bool            `yaml:"reflowDocComments"`
	LineBreakBeforeControlFlowKeywords     bool            `yaml:"lineBreakBeforeControlFlowKeywords"`
	LineBreakBeforeEachArgument            bool            `yaml:"lineBreakBeforeEachArgument"`
	LineBreakBeforeEachGenericRequirement  bool            `yaml:"lineBreakBeforeEachGenericRequirement"`
	Rules                                  map[string]bool `yaml:"rules"`
}

// MarshalYAML implements [yaml.Marshaler].
func (c Configuration) MarshalYAML() (any, error) {
	unit, err := marshalIndentUnit(c.Indentation)
	if err != nil {
		return nil, err
	}
	return configShadow{
		LineLength:                            c.LineLength,
		Indentation:                           unit,
		TabWidth:                              c.TabWidth,
		MaximumBlankLines:                     c.MaximumBlankLines,
		RespectsExistingLineBreaks:            c.RespectsExistingLineBreaks,
		ReflowDocComments:                     c.ReflowDocComments,
		LineBreakBeforeControlFlowKeywords:    c.LineBreakBeforeControlFlowKeywords,
		LineBreakBeforeEachArgument:           c.LineBreakBeforeEachArgument,
		LineBreakBeforeEachGenericRequirement: c.LineBreakBeforeEachGenericRequirement,
		Rules:                                 c.Rules,
	}, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Configuration) UnmarshalYAML(value *yaml.Node) error {
	var shadow configShadow
	if err := value.Decode(&shadow); err != nil {
		return err
	}
	unit, err := unmarshalIndentUnit(shadow.Indentation)
	if err != nil {
		return err
	}
	*c = Configuration{
		LineLength:                            shadow.LineLength,
		Indentation:                           unit,
		TabWidth:                              shadow.TabWidth,
		MaximumBlankLines:                     shadow.MaximumBlankLines,
		RespectsExistingLineBreaks:            shadow.RespectsExistingLineBreaks,
		ReflowDocComments:                     shadow.ReflowDocComments,
		LineBreakBeforeControlFlowKeywords:    shadow.LineBreakBeforeControlFlowKeywords,
		LineBreakBeforeEachArgument:           shadow.LineBreakBeforeEachArgument,
		LineBreakBeforeEachGenericRequirement: shadow.LineBreakBeforeEachGenericRequirement,
		Rules:                                 shadow.Rules,
	}
	return nil
}

// Default returns a Configuration with reasonable defaults: 100-column
// lines, two-space indentation, a tab width of 4, and at most one blank
// line preserved between declarations.
func Default() Configuration {
	return Configuration{
		LineLength:                 100,
		Indentation:                indent.Spaces(2),
		TabWidth:                   4,
		MaximumBlankLines:          1,
		RespectsExistingLineBreaks: true,
	}
}

// Range is an inclusive, 1-based line range a printer pass may be limited
// to, for reformatting only part of a file.
type Range struct {
	StartLine, EndLine int
}

// Contains reports whether line falls within the range.
func (r Range) Contains(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// marshalIndentUnit renders u in the string form used for the YAML
// "indentation" field, e.g. "2sp" or "1tab".
func marshalIndentUnit(u indent.Unit) (string, error) {
	switch u.Kind {
	case indent.SpacesKind:
		return fmt.Sprintf("%dsp", u.N), nil
	case indent.TabsKind:
		return fmt.Sprintf("%dtab", u.N), nil
	default:
		return "", fmt.Errorf("config: unknown indent unit kind %v", u.Kind)
	}
}

// unmarshalIndentUnit parses the inverse of [marshalIndentUnit].
func unmarshalIndentUnit(s string) (indent.Unit, error) {
	switch {
	case strings.HasSuffix(s, "sp"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "sp"))
		if err != nil {
			return indent.Unit{}, fmt.Errorf("config: invalid indent unit %q: %w", s, err)
		}
		return indent.Spaces(n), nil
	case strings.HasSuffix(s, "tab"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "tab"))
		if err != nil {
			return indent.Unit{}, fmt.Errorf("config: invalid indent unit %q: %w", s, err)
		}
		return indent.Tabs(n), nil
	default:
		return indent.Unit{}, fmt.Errorf("config: invalid indent unit %q: must end in \"sp\" or \"tab\"", s)
	}
}
