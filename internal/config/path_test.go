package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SOBI_TEST_DIR", "/tmp/sobi")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde prefix",
			input:    "~/data/sobi.db",
			expected: filepath.Join(home, "data", "sobi.db"),
		},
		{
			name:     "bare tilde",
			input:    "~",
			expected: home,
		},
		{
			name:     "environment variable",
			input:    "$SOBI_TEST_DIR/sobi.db",
			expected: "/tmp/sobi/sobi.db",
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/sobi/sobi.db",
			expected: "/var/lib/sobi/sobi.db",
		},
		{
			name:     "empty path unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
