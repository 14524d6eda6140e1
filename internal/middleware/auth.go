package middleware

import (
	"context"
	"strings"
	"time"

	"easywords/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const bootstrapTimeout = 15 * time.Second

// UnauthorizedText is sent to signed-out users outside the login dialog
const UnauthorizedText = "Ты не вошёл в аккаунт. Нажми /start, чтобы войти."

// SessionProvider gives access to the per-user sessions of the bot
type SessionProvider interface {
	Acquire(ctx context.Context, userID int64) (*session.Session, func())
	AwaitingCredentials(userID int64) bool
}

// AuthMiddleware creates authentication middleware. It bootstraps the
// sender's session, serializes updates of the same user and lets signed-out
// users reach only the login and registration entry points.
func AuthMiddleware(provider SessionProvider, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}
			userID := sender.ID

			ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
			sess, release := provider.Acquire(ctx, userID)
			cancel()
			defer release()

			if sess.Snapshot().Authenticated || provider.AwaitingCredentials(userID) || isPublic(c) {
				return next(c)
			}

			logger.Debug("Rejected update from signed-out user", zap.Int64("user_id", userID))
			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: UnauthorizedText, ShowAlert: true})
			}
			return c.Send(UnauthorizedText)
		}
	}
}

// isPublic reports whether the update is a login or registration entry point
func isPublic(c tele.Context) bool {
	if cb := c.Callback(); cb != nil {
		switch cb.Unique {
		case "login", "register", "cancel":
			return true
		}
		return false
	}

	fields := strings.Fields(c.Text())
	if len(fields) == 0 {
		return false
	}
	// Commands may carry the bot name: /start@easywords_bot
	command, _, _ := strings.Cut(fields[0], "@")
	switch command {
	case "/start", "/login", "/register":
		return true
	}
	return false
}
