package utils

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is absent, defaultValue is returned. An unparseable or non-finite
// value returns defaultValue and records a message under key in fieldErrors.
func ParseFloatParam(params url.Values, key string, defaultValue float64, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return defaultValue, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultValue, fieldErrors
	}
	return f, fieldErrors
}

// ParseIntParam is the integer counterpart of ParseFloatParam.
func ParseIntParam(params url.Values, key string, defaultValue int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return defaultValue, fieldErrors
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultValue, fieldErrors
	}
	return i, fieldErrors
}
