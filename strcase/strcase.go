// Package strcase converts text to a single letter case.
package strcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatString returns input fully upper-cased when toUpper is true and
// fully lower-cased otherwise.
//
// Full Unicode case mappings are applied, so the result may differ in
// length from the input ("ß" upper-cases to "SS").
func FormatString(input string, toUpper bool) string {
	// A Caser keeps state between calls; build one per call.
	if toUpper {
		return cases.Upper(language.Und).String(input)
	}
	return cases.Lower(language.Und).String(input)
}

// Format is FormatString with the default upper-case flag.
func Format(input string) string {
	return FormatString(input, true)
}
