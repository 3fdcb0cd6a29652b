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
			op:       OpItemAdd,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpItemAdd,
			err:      errors.New("invalid input: item name is empty"),
			expected: "Failed to add item: invalid input: item name is empty",
		},
		{
			name:     "persistence operation",
			op:       OpPlaylistSave,
			err:      errors.New("disk full"),
			expected: "Failed to save playlist: disk full",
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
			op:       OpStateOpen,
			context:  "/tmp/setlist.db",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpStateOpen,
			context:  "/tmp/setlist.db",
			err:      errors.New("permission denied"),
			expected: "Failed to open playlist database '/tmp/setlist.db': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpLogOpen,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open log file: permission denied",
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

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpItemAdd,
		OpPlaylistLoad, OpPlaylistSave,
		OpConfigLoad, OpLogOpen, OpStateOpen, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
