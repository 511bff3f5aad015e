package fleet

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && len(trimmed) <= 255
}
