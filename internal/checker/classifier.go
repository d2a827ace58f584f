package checker

import "regexp"

// availableRegex marks the product as available when it matches the
// extracted status text.
var availableRegex = regexp.MustCompile(`[Aa]vailable`)

// IsAvailable reports whether the status text indicates online availability.
func IsAvailable(text string) bool {
	return availableRegex.MatchString(text)
}

// DecorateMessage wraps the status text in celebratory markers when the
// product is available; otherwise the text passes through unchanged.
func DecorateMessage(text string) string {
	if IsAvailable(text) {
		return ":tada: " + text + " :tada:"
	}
	return text
}
