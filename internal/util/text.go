package util

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory lower-cases a category label or diagnosis.
// A Caser holds state, so one is built per call.
func NormalizeCategory(s string) string {
	return cases.Lower(language.Und).String(s)
}

// SameCategory reports whether a diagnosis matches a category ignoring case.
func SameCategory(diagnosis, category string) bool {
	return NormalizeCategory(diagnosis) == NormalizeCategory(category)
}
