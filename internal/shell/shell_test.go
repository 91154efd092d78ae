package shell

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	testHome := "/test/home/user"
	t.Setenv("HOME", testHome)

	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Tilde expansion",
			input:    "~/test",
			expected: testHome + "/test",
		},
		{
			name:     "Single tilde",
			input:    "~",
			expected: testHome,
		},
		{
			name:     "Tilde in the middle is kept",
			input:    "/tmp/~/x",
			expected: "/tmp/~/x",
		},
		{
			name:     "Environment variable expansion",
			input:    "$HOME/docs",
			expected: testHome + "/docs",
		},
		{
			name:     "Braced environment variable expansion",
			input:    "${HOME}/docs",
			expected: testHome + "/docs",
		},
		{
			name:     "Mixed expansions",
			input:    "~/docs/$HOME/test",
			expected: testHome + "/docs/" + testHome + "/test",
		},
		{
			name:     "Undefined environment variable",
			input:    "$BRM_UNDEFINED_VAR/test",
			expected: "/test",
		},
		{
			name:    "Unclosed brace",
			input:   "${HOME/test",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ExpandHome(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/test/home/user")

	got, err := ExpandPath("~/a/../trash/")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := "/test/home/user/trash"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	rel, err := ExpandPath("relative")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !filepath.IsAbs(rel) {
		t.Errorf("Expected absolute path, got %q", rel)
	}

	if _, err := ExpandPath(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestIsShellVarChar(t *testing.T) {
	testCases := []struct {
		name     string
		char     byte
		expected bool
	}{
		{"Lowercase letter", 'a', true},
		{"Uppercase letter", 'Z', true},
		{"Digit", '5', true},
		{"Underscore", '_', true},
		{"Space", ' ', false},
		{"Punctuation", '.', false},
		{"Special character", '$', false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := isShellVarChar(tc.char)
			if result != tc.expected {
				t.Errorf("For char %q, expected %v, got %v", tc.char, tc.expected, result)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	for _, sh := range Shells {
		t.Run(sh, func(t *testing.T) {
			script, err := Completion(sh, "brm")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !strings.Contains(script, "GO_FLAGS_COMPLETION=1") {
				t.Errorf("script does not use go-flags completion:\n%s", script)
			}
			if !strings.Contains(script, "brm") {
				t.Errorf("script does not mention program name:\n%s", script)
			}
		})
	}

	if _, err := Completion("powershell", "brm"); err == nil {
		t.Error("Expected error for unsupported shell")
	}
}
