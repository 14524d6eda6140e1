package handler

import (
	"strings"

	"easywords/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingUsername:
		if text == "" {
			return c.Send("Имя пользователя не может быть пустым", cancelMarkup())
		}
		h.SetState(userID, &domain.StateData{
			State:    domain.StateWaitingPassword,
			Username: text,
			Register: state.Register,
		})
		return c.Send("Введи пароль:", cancelMarkup())

	case domain.StateWaitingPassword:
		return h.handlePassword(c, state, text)

	case domain.StateWaitingDictionary:
		return h.handleDictionaryName(c, text)

	case domain.StateWaitingTranslation:
		return h.handleTranslation(c, state.CurrentWord, text)

	default:
		// Idle and waiting-word states both take the text as a new word
		if h.user(userID).session.Snapshot().SelectedDictionaryID == 0 {
			return c.Send("Сначала выбери словарь", mainMenuMarkup())
		}

		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})
		return c.Send("Жду перевод", cancelMarkup())
	}
}

func (h *Handler) handlePassword(c tele.Context, state *domain.StateData, password string) error {
	userID := c.Sender().ID
	u := h.user(userID)
	ctx, cancel := requestContext()
	defer cancel()

	// The password should not stay in the chat history
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete password message", zap.Error(err))
	}

	h.ResetState(userID)

	if state.Register {
		if err := u.auth.Register(ctx, state.Username, password); err != nil {
			h.logger.Warn("Registration failed",
				zap.Int64("user_id", userID),
				zap.String("username", state.Username),
				zap.Error(err),
			)
			return c.Send("❌ "+userMessage(err), welcomeMarkup())
		}
	}

	if _, err := u.auth.Login(ctx, state.Username, password); err != nil {
		h.logger.Warn("Login failed",
			zap.Int64("user_id", userID),
			zap.String("username", state.Username),
			zap.Error(err),
		)
		return c.Send("❌ "+userMessage(err), welcomeMarkup())
	}

	u.session.Bootstrap(ctx)

	st := u.session.Snapshot()
	if !st.Authenticated {
		return c.Send("❌ Не удалось войти. Попробуй ещё раз.", welcomeMarkup())
	}
	return c.Send("✅ Доступ разрешён!\n\n"+mainMenuText(st), mainMenuMarkup())
}

func (h *Handler) handleTranslation(c tele.Context, word, translation string) error {
	userID := c.Sender().ID
	u := h.user(userID)
	ctx, cancel := requestContext()
	defer cancel()

	dictionaryID := u.session.Snapshot().SelectedDictionaryID

	if _, err := u.words.SaveWordPair(ctx, dictionaryID, word, translation); err != nil {
		h.logger.Error("Failed to save word pair",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Не удалось сохранить слово: "+userMessage(err), cancelMarkup())
	}

	u.session.FetchWords(ctx, dictionaryID)

	// Reset to waiting for next word
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})

	return c.Send("✅ Сохранено!\n\nМожешь отправить следующее слово или вернуться в /start", cancelMarkup())
}

func (h *Handler) handleDictionaryName(c tele.Context, name string) error {
	userID := c.Sender().ID
	u := h.user(userID)
	ctx, cancel := requestContext()
	defer cancel()

	d, err := u.dictionaries.Create(ctx, name)
	if err != nil {
		h.logger.Warn("Failed to create dictionary", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Не удалось создать словарь: "+userMessage(err), cancelMarkup())
	}

	if err := u.session.ReloadDictionaries(ctx); err != nil {
		h.logger.Warn("Failed to reload dictionaries", zap.Int64("user_id", userID), zap.Error(err))
	}
	u.session.HandleSelectChange(ctx, d.ID)

	h.ResetState(userID)
	return c.Send("✅ Словарь создан!\n\n"+mainMenuText(u.session.Snapshot()), mainMenuMarkup())
}
