package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Amount is an optional dollar figure. Data files carry it either as a
// number or as display text such as "$1,100"; for text, Value holds the
// whole-dollar part of the first figure ("$1,100.50" and "1,100 - 1,200"
// are both 1100).
type Amount struct {
	Raw   string
	Value int64
	set   bool
	text  bool
	whole bool
}

// NewAmount returns a present amount of v whole dollars.
func NewAmount(v int64) Amount {
	return Amount{Raw: strconv.FormatInt(v, 10), Value: v, set: true, whole: true}
}

// ParseAmount builds an amount from display text. The value is read from
// the first run of digits and thousands separators; cents and anything after
// the figure are ignored.
func ParseAmount(s string) Amount {
	v, whole := wholeDollars(s)
	return Amount{Raw: s, Value: v, set: true, text: true, whole: whole}
}

// Present reports whether the amount should be displayed. A numeric zero is
// treated the same as a missing value; non-empty text always counts.
func (a Amount) Present() bool {
	if !a.set {
		return false
	}
	if a.text {
		return strings.TrimSpace(a.Raw) != ""
	}
	return a.Value != 0
}

// Whole reports whether the amount is exactly a whole-dollar figure, so it
// can be reformatted without losing what the text says.
func (a Amount) Whole() bool { return a.set && a.whole }

// Int returns the numeric value, zero when absent.
func (a Amount) Int() int64 {
	if !a.set {
		return 0
	}
	return a.Value
}

// UnmarshalYAML accepts ints, floats, strings and null.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("amount: line %d: expected scalar, got kind %d", node.Line, node.Kind)
	}
	switch node.Tag {
	case "!!null":
		*a = Amount{}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("amount: line %d: %w", node.Line, err)
		}
		*a = Amount{Raw: node.Value, Value: int64(math.Round(f)), set: true, whole: true}
	default:
		*a = ParseAmount(node.Value)
	}
	return nil
}

// wholeDollars reads the first figure in s. whole is true when s holds
// nothing but that figure, optionally behind a dollar sign.
func wholeDollars(s string) (v int64, whole bool) {
	s = strings.TrimSpace(s)
	start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return 0, false
	}
	prefix := strings.TrimSpace(s[:start])
	var digits strings.Builder
	end := start
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			digits.WriteByte(c)
		} else if c != ',' {
			break
		}
		end++
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, (prefix == "" || prefix == "$") && end == len(s)
}
