//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDeleteCommit,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpDeleteCommit,
			err:      errors.New("file not found"),
			expected: "Failed to delete media: file not found",
		},
		{
			name:     "scan operation",
			op:       OpIndexScan,
			err:      errors.New("permission denied"),
			expected: "Failed to scan library: permission denied",
		},
		{
			name:     "index operation",
			op:       OpIndexOpen,
			err:      errors.New("database is locked"),
			expected: "Failed to open media index: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpIndexOpen,
			context:  "index.db",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpFilterSave,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to save filter: disk full",
		},
		{
			name:     "includes context in quotes",
			op:       OpIndexScan,
			context:  "/srv/photos",
			err:      errors.New("permission denied"),
			expected: "Failed to scan library '/srv/photos': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
