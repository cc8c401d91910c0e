package utils

import "regexp"

// The signup password policy mirrors the client contract's pattern
// (?=.*\d)(?=.*[a-z])(?=.*[A-Z]).{8,16} evaluated without anchors. Each
// lookahead only asserts that a character class occurs somewhere in the
// string, and because the pattern is unanchored the {8,16} window merely
// requires eight characters to remain at some match position, so strings
// longer than 16 still pass. Do not tighten this: anchoring the pattern
// would change the accepted set.
var (
	hasDigit = regexp.MustCompile(`[0-9]`)
	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
)

// IsValidPassword reports whether a signup password satisfies the policy:
// at least 8 characters with at least one digit, one lowercase and one
// uppercase letter anywhere in the string.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return hasDigit.MatchString(password) &&
		hasLower.MatchString(password) &&
		hasUpper.MatchString(password)
}
