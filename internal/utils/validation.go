package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const (
	maxSiteLength  = 100
	MinChartPixels = 100
	MaxChartPixels = 2000
)

// ValidateSite checks a launch site selection. Any well-formed name is
// accepted, including names that do not occur in the data.
func ValidateSite(site string) error {
	if strings.TrimSpace(site) == "" {
		return errors.New("site cannot be empty")
	}

	if len(site) > maxSiteLength {
		return errors.New("site too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(site) {
		return errors.New("site contains invalid characters")
	}

	return nil
}

// ValidateChartDimension checks a requested chart width or height in pixels.
func ValidateChartDimension(pixels int) error {
	if pixels < MinChartPixels || pixels > MaxChartPixels {
		return errors.New("dimension must be between 100 and 2000 pixels")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
