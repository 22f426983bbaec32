package utils

import (
	"fmt"
	"strings"
)

// NormalizePhone validates a mobile number and normalizes it to the
// international +880 form. Accepted inputs: "01XXXXXXXXX" (11 digits),
// "8801XXXXXXXXX" or "+8801XXXXXXXXX"; spaces and dashes are ignored.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", fmt.Errorf("phone number is required")
	}

	digits := cleaned
	switch {
	case strings.HasPrefix(cleaned, "+880"):
		digits = "0" + cleaned[4:]
	case strings.HasPrefix(cleaned, "880"):
		digits = "0" + cleaned[3:]
	}

	if len(digits) != 11 || !strings.HasPrefix(digits, "01") {
		return "", fmt.Errorf("invalid mobile number: %s", raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid mobile number: %s", raw)
		}
	}

	return "+880" + digits[1:], nil
}
