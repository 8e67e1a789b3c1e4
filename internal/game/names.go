package game

import "golang.org/x/text/cases"

// FoldName normalizes a name for case-insensitive comparison.
// Full Unicode folding is used so Cyrillic names match as well as ASCII ones.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// MatchName returns true if the two names are equal ignoring case.
func MatchName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}
