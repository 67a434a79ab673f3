// Package textfix repairs text fields that legacy profile vendors wrote
// with stray 8-bit bytes instead of the 7-bit ASCII the format asks for.
//
// This is not an encoding detector: the fix-ups are a closed table of
// known vendor bugs, kept as data in quirks.yaml so new rules are
// additive edits rather than code changes.
package textfix

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrIrreparable reports text that is still not valid UTF-8 after every
// known fix-up has been applied. Callers drop the affected entry rather
// than surface corrupted text.
var ErrIrreparable = errors.New("text is not valid UTF-8 after repair")

//go:embed quirks.yaml
var quirksYAML []byte

// rule is one byte-level fix-up: a byte value and either a UTF-8
// replacement string or a deletion.
type rule struct {
	// Byte is the raw byte value the rule matches.
	Byte byte `yaml:"byte"`
	// Replacement is the UTF-8 string substituted for the byte.
	Replacement string `yaml:"replacement,omitempty"`
	// Delete drops the byte entirely; Replacement is ignored.
	Delete bool `yaml:"delete,omitempty"`
}

type quirkTable struct {
	Rules []rule `yaml:"rules"`
}

// rules is the ordered fix-up table, loaded once from the embedded YAML.
var rules = mustLoadRules()

func mustLoadRules() []rule {
	var table quirkTable
	if err := yaml.Unmarshal(quirksYAML, &table); err != nil {
		panic(fmt.Sprintf("textfix: embedded quirks.yaml is malformed: %v", err))
	}
	return table.Rules
}

func ruleFor(b byte) (rule, bool) {
	for _, r := range rules {
		if r.Byte == b {
			return r, true
		}
	}
	return rule{}, false
}

// Repair applies the known vendor fix-ups to s and returns the repaired
// text. Valid UTF-8 input passes through unchanged. If the result still
// fails UTF-8 validation the original bytes are beyond the table's reach
// and Repair returns ErrIrreparable.
func Repair(s string) (string, error) {
	if utf8.ValidString(s) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		r, ok := ruleFor(s[i])
		if !ok {
			b.WriteByte(s[i])
			continue
		}
		if r.Delete {
			continue
		}
		b.WriteString(r.Replacement)
	}

	fixed := b.String()
	if !utf8.ValidString(fixed) {
		return "", fmt.Errorf("%w: %q", ErrIrreparable, s)
	}
	return fixed, nil
}
