// Package validation parses the text a user types at the shell prompts.
package validation

import (
	"strconv"
	"strings"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
)

// statusAliases maps accepted status input, lowercased, to a status
var statusAliases = map[string]domain.Status{
	string(domain.StatusDone):    domain.StatusDone,
	"done":                       domain.StatusDone,
	string(domain.StatusNotDone): domain.StatusNotDone,
	"not done":                   domain.StatusNotDone,
	"undone":                     domain.StatusNotDone,
}

// ParseIndex converts a 1-based task number typed by the user to a 0-based
// index. Range checking is left to the task list.
func ParseIndex(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.NewInvalidInputError("task number", input, "must be a whole number")
	}
	return n - 1, nil
}

// ParseStatus converts typed status text to one of the two statuses.
// Matching ignores case and surrounding spaces.
func ParseStatus(input string) (domain.Status, error) {
	key := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if status, ok := statusAliases[key]; ok {
		return status, nil
	}
	return "", errors.NewInvalidInputError("status", input,
		"expected \""+domain.StatusDone.String()+"\" or \""+domain.StatusNotDone.String()+"\"")
}
