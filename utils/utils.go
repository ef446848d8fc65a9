package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var validToken = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// ValidateInput splits a space separated argument into tokens, rejecting
// anything that is not alphanumeric, hyphen, or underscore.
func ValidateInput(input string) ([]string, error) {
	if input == "" {
		return []string{}, nil
	}

	items := strings.Fields(input)
	for _, item := range items {
		if !validToken.MatchString(item) {
			return nil, fmt.Errorf(
				"invalid input '%s': Input must only contain alphanumeric characters, hyphens, and underscores",
				item,
			)
		}
	}
	return items, nil
}
