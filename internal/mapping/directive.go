package mapping

import (
	"fmt"
	"strings"

	"vanilla/internal/analyze"
)

// ValidatedAsDirective names the directive pairing a draft with its target.
const ValidatedAsDirective = analyze.DirectivePrefix + "validatedas"

// ParseDirective parses the text of a "//vanilla:" comment (without the
// leading slashes) and returns the target reference.
func ParseDirective(text string) (string, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty directive")
	}

	if fields[0] != ValidatedAsDirective {
		return "", fmt.Errorf("unknown directive %q", fields[0])
	}

	switch len(fields) {
	case 1:
		return "", fmt.Errorf("%s: missing target type", ValidatedAsDirective)
	case 2:
		return fields[1], nil
	default:
		return "", fmt.Errorf("%s: expected exactly one target type, got %d", ValidatedAsDirective, len(fields)-1)
	}
}
