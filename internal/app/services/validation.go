package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arda/campusconnect/internal/pkg/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// checkLength validates a required trimmed string against length bounds and
// records a field error on failure. Returns the trimmed value.
func checkLength(ve *apperrors.ValidationError, field, value string, min, max int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < min || len(trimmed) > max {
		ve.Add(field, fmt.Sprintf("%s must be between %d and %d characters", field, min, max))
	}
	return trimmed
}

// checkOptionalLength validates an optional trimmed string against a
// maximum length. Returns the trimmed value.
func checkOptionalLength(ve *apperrors.ValidationError, field, value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > max {
		ve.Add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return trimmed
}

// checkEmail validates an email address and returns it lowercased.
func checkEmail(ve *apperrors.ValidationError, field, value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(trimmed) {
		ve.Add(field, "a valid email address is required")
	}
	return trimmed
}

// checkOneOf validates an enumerated field against its accepted values.
func checkOneOf[T ~string](ve *apperrors.ValidationError, field string, value T, accepted []T) {
	for _, a := range accepted {
		if value == a {
			return
		}
	}
	ve.Add(field, fmt.Sprintf("%s must be one of: %s", field, joinValues(accepted)))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// splitSkills turns a comma-separated skills string into a trimmed,
// order-preserving list.
func splitSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
