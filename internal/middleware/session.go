package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionChecker reports whether a user has a loaded deck
type SessionChecker interface {
	HasSession(userID int64) bool
}

// NoSessionMessage is shown to users who have not loaded the vocabulary yet
const NoSessionMessage = "No cards loaded. Send /start to load the vocabulary."

// SessionRequired creates middleware that refuses deck input until /start succeeded
func SessionRequired(sessions SessionChecker, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !sessions.HasSession(sender.ID) {
				logger.Debug("Input without a loaded deck", zap.Int64("user_id", sender.ID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{
						Text:      NoSessionMessage,
						ShowAlert: true,
					})
				}
				return c.Send(NoSessionMessage)
			}

			// Deck is loaded, continue
			return next(c)
		}
	}
}
