package handler

import (
	"errors"
	"fmt"
	"strings"

	"easywords/internal/api"
	"easywords/internal/domain"
	"easywords/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	welcomeText      = "Привет! Это EasyWords.\n\nВойди или зарегистрируйся, чтобы работать со своими словарями."
	genericErrorText = "Произошла ошибка. Попробуйте позже."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)

	st := h.user(userID).session.Snapshot()
	if !st.Authenticated {
		return c.Send(welcomeText, welcomeMarkup())
	}
	return c.Send(mainMenuText(st), mainMenuMarkup())
}

// handleMainMenu shows the main menu in place of the current message
func (h *Handler) handleMainMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)
	return h.show(c, mainMenuText(h.user(userID).session.Snapshot()), mainMenuMarkup())
}

// handleLogin starts the login dialog
func (h *Handler) handleLogin(c tele.Context) error {
	return h.startCredentials(c, false)
}

// handleRegister starts the registration dialog
func (h *Handler) handleRegister(c tele.Context) error {
	return h.startCredentials(c, true)
}

func (h *Handler) startCredentials(c tele.Context, register bool) error {
	userID := c.Sender().ID

	if h.user(userID).session.Snapshot().Authenticated {
		return h.show(c, "Ты уже вошёл.\n\n"+mainMenuText(h.user(userID).session.Snapshot()), mainMenuMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State:    domain.StateWaitingUsername,
		Register: register,
	})

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return c.Send("Введи имя пользователя:", cancelMarkup())
}

// handleLogout forgets the access token of the user
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID
	ctx, cancel := requestContext()
	defer cancel()

	if err := h.user(userID).auth.Logout(ctx); err != nil {
		h.logger.Error("Failed to logout", zap.Int64("user_id", userID), zap.Error(err))
		return h.fail(c, genericErrorText)
	}

	h.forgetUser(userID)
	h.ResetState(userID)

	h.logger.Info("User logged out", zap.Int64("user_id", userID))
	return h.show(c, "👋 Ты вышел из аккаунта.\n\n"+welcomeText, welcomeMarkup())
}

// show edits the message when handling a callback and sends a new one otherwise
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// fail reports a problem as a callback alert or as a plain message
func (h *Handler) fail(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// mainMenuText describes the selected dictionary of a session
func mainMenuText(st session.State) string {
	var b strings.Builder
	b.WriteString("🏠 Главное меню\n\n")

	if d, ok := domain.FindDictionary(st.Dictionaries, st.SelectedDictionaryID); ok && st.SelectedDictionaryID != 0 {
		fmt.Fprintf(&b, "📚 Словарь: %s (%d)\n", d.Name, len(st.Words))
	} else {
		b.WriteString("📚 Словарь не выбран\n")
	}
	if st.Error != "" {
		fmt.Fprintf(&b, "⚠️ %s\n", st.Error)
	}

	b.WriteString("\nВыберите действие:")
	return b.String()
}

// userMessage maps a failure to the text shown in the chat
func userMessage(err error) string {
	if msg, ok := api.Message(err); ok {
		return msg
	}
	if errors.Is(err, domain.ErrNotAuthorized) {
		return "Сначала войди: /start"
	}
	return genericErrorText
}
