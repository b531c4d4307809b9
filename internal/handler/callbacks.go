package handler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode"

	"flashcards/internal/input"
	"flashcards/internal/middleware"
	"flashcards/internal/speech"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackAction resolves a callback to a deck action, by Unique first and Data second
func callbackAction(unique, data string) input.Action {
	if a, ok := buttonActions[unique]; ok {
		return a
	}
	if unique == "" {
		return buttonActions[cleanCallbackData(data)]
	}
	return input.None
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Shuffling a one-card deck or a repeated tap renders the same text
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Card unchanged, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit card, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks not matched by a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	action := callbackAction(callback.Unique, callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
		zap.Stringer("action", action),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch action {
	case input.None:
		h.logger.Warn("Unhandled callback",
			zap.String("data", callback.Data),
			zap.String("unique", callback.Unique),
		)
		return c.Respond()
	case input.Pronounce:
		return h.handlePronounce(c)
	default:
		return h.showAction(c, action)
	}
}

// handleButton returns the handler for a navigation button
func (h *Handler) handleButton(action input.Action) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.showAction(c, action)
	}
}

// showAction applies action and shows the resulting card,
// editing the message when it came from a button
func (h *Handler) showAction(c tele.Context, action input.Action) error {
	userID := c.Sender().ID

	view, ok := h.perform(userID, action)
	if !ok {
		return respondNoDeck(c)
	}
	text, markup := renderCard(view)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handlePronounce sends the current word as audio
func (h *Handler) handlePronounce(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	word, audio, err := h.pronounce(ctx, userID)
	switch {
	case errors.Is(err, speech.ErrUnavailable):
		// no engine on this host: nothing to play
		return respond(c, "Pronunciation is not available")
	case errors.Is(err, speech.ErrCanceled):
		return respond(c, "")
	case err != nil:
		h.logger.Error("Failed to pronounce word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)
		return respond(c, "Could not pronounce this word")
	}

	if err := respond(c, ""); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(&tele.Audio{
		File:     tele.FromReader(bytes.NewReader(audio)),
		Title:    word,
		FileName: word + ".wav",
		MIME:     "audio/wav",
	})
}

// respond acknowledges a callback with an optional toast, or sends text otherwise
func respond(c tele.Context, text string) error {
	if c.Callback() != nil {
		if text == "" {
			return c.Respond()
		}
		return c.Respond(&tele.CallbackResponse{Text: text})
	}
	if text == "" {
		return nil
	}
	return c.Send(text)
}

func respondNoDeck(c tele.Context) error {
	return respond(c, middleware.NoSessionMessage)
}
