package helpers

import "database/sql"

// GetContentNullString converts a string value to sql.NullString,
// treating the empty string as NULL.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// StringOrDefault dereferences a string pointer, substituting a default
// for NULL columns so response shaping never sees a nil.
func StringOrDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// IntOrZero dereferences an int pointer, substituting zero.
func IntOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
