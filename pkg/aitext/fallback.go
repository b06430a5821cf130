package aitext

import "strings"

// The model's prose may omit a section the user already specified explicitly;
// the user's original input is always an acceptable degraded answer. These
// helpers are total: they never fail, they only substitute.

// StringOr returns extracted unless it is blank, in which case it returns
// fallback.
func StringOr(extracted, fallback string) string {
	if strings.TrimSpace(extracted) == "" {
		return fallback
	}
	return extracted
}

// ListOr returns extracted unless it is empty, in which case it returns
// fallback.
func ListOr(extracted, fallback []string) []string {
	if len(extracted) == 0 {
		return fallback
	}
	return extracted
}
