package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading "~" and any $VAR or ${VAR} references.
// Undefined variables expand to the empty string, as a shell would.
func ExpandHome(input string) (string, error) {
	result := input

	// 1. expand tilda
	if result == "~" || strings.HasPrefix(result, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			return "", errors.New("HOME environment variable is not set")
		}
		result = home + strings.TrimPrefix(result, "~")
	}

	// 2. expand env, e.g. $HOME, ${HOME}
	if strings.Count(result, "${") > strings.Count(result, "}") {
		return "", fmt.Errorf("unclosed variable brace in input: %s", input)
	}
	result = os.Expand(result, func(name string) string {
		if !isShellVarName(name) {
			return ""
		}
		return os.Getenv(name)
	})

	return result, nil
}

// ExpandPath expands input like ExpandHome and makes it absolute and clean.
func ExpandPath(input string) (string, error) {
	expanded, err := ExpandHome(input)
	if err != nil {
		return "", err
	}
	if expanded == "" {
		return "", errors.New("empty path")
	}
	return filepath.Abs(expanded)
}

func isShellVarName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isShellVarChar(name[i]) {
			return false
		}
	}
	return true
}

func isShellVarChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
