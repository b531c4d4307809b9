package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: (re)loads the vocabulary and shows the first card
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started deck",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	s, err := h.startSession(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to initialize deck",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(renderError("Failed to load vocabulary"))
	}

	s.mu.Lock()
	view := viewOf(s.nav)
	s.mu.Unlock()

	text, markup := renderCard(view)
	return c.Send(text, markup)
}
