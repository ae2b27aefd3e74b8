// Package values processes a value that is either text or a number.
package values

import (
	"fmt"
	"unicode/utf16"
)

// Value is either Text or Number. The set of variants is closed: only types
// in this package implement it.
type Value interface {
	isValue()
}

// Text is the textual variant of Value.
type Text string

// Number is the numeric variant of Value.
type Number float64

func (Text) isValue()   {}
func (Number) isValue() {}

// Process returns the length of a Text in UTF-16 code units, or twice the
// value of a Number.
func Process(v Value) float64 {
	switch v := v.(type) {
	case Text:
		return float64(codeUnits(string(v)))
	case Number:
		return float64(v) * 2
	default:
		panic(fmt.Sprintf("values: unexpected Value %T", v))
	}
}

func codeUnits(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
