package handler

import (
	"testing"

	"flashcards/internal/input"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "\fflip\x00",
			expected: "flip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCallbackAction(t *testing.T) {
	tests := []struct {
		name     string
		unique   string
		data     string
		expected input.Action
	}{
		{name: "previous by unique", unique: "prev", expected: input.Previous},
		{name: "next by unique", unique: "next", expected: input.Next},
		{name: "flip by unique", unique: "flip", expected: input.Flip},
		{name: "shuffle by unique", unique: "shuffle", expected: input.Shuffle},
		{name: "pronounce by unique", unique: "pronounce", expected: input.Pronounce},
		{name: "by data when unique is missing", data: "\fnext", expected: input.Next},
		{name: "unknown unique", unique: "main_menu", data: "next", expected: input.None},
		{name: "nothing", expected: input.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, callbackAction(tt.unique, tt.data))
		})
	}
}

func TestTextAction(t *testing.T) {
	tests := []struct {
		text     string
		expected input.Action
	}{
		{text: "s", expected: input.Shuffle},
		{text: " p ", expected: input.Pronounce},
		{text: "←", expected: input.Previous},
		{text: "→", expected: input.Next},
		{text: ">", expected: input.Next},
		{text: "Enter", expected: input.Flip},
		{text: "space", expected: input.Flip},
		{text: "ArrowLeft", expected: input.Previous},
		{text: "hello", expected: input.None},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, textAction(tt.text))
		})
	}
}
