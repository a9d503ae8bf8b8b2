package launches

import (
	"fmt"
	"strings"
)

// ShortBoosterLabel returns the second whitespace-delimited token of a booster
// version, e.g. "Falcon 9 B5" -> "9" and "F9 FT B1019" -> "FT".
func ShortBoosterLabel(version string) (string, error) {
	fields := strings.Fields(version)
	if len(fields) < 2 {
		return "", fmt.Errorf("booster version %q has fewer than two tokens", version)
	}
	return fields[1], nil
}
