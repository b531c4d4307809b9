package handler

import (
	"strings"

	"flashcards/internal/input"

	tele "gopkg.in/telebot.v3"
)

// textKeys maps typed text onto key names; anything else is passed through
var textKeys = map[string]string{
	"←":     "ArrowLeft",
	"<":     "ArrowLeft",
	"→":     "ArrowRight",
	">":     "ArrowRight",
	"enter": "Enter",
	"space": " ",
}

// textAction decodes a text message as a key press
func textAction(text string) input.Action {
	key := strings.TrimSpace(text)
	if mapped, ok := textKeys[strings.ToLower(key)]; ok {
		key = mapped
	}
	return input.KeyAction(key)
}

// handleText handles all text messages as key presses
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	action := textAction(text)
	if action == input.Pronounce {
		return h.handlePronounce(c)
	}
	// unknown keys just show the current card again
	return h.showAction(c, action)
}
