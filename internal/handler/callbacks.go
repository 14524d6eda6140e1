package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"easywords/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	dictionaryPrefix = "dict_"
	// maxListedWords keeps the words message below the Telegram size limit
	maxListedWords = 100
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

// parseCallbackID extracts the positive id that follows prefix
func parseCallbackID(data, prefix string) (int, bool) {
	if !strings.HasPrefix(data, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(data, prefix)))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// If message is not modified, it means it was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
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

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons whose Unique did not reach their own handler
	key := callback.Unique
	if key == "" {
		key = data
	}
	switch key {
	case btnDictionaries.Unique:
		return h.handleDictionaries(c)
	case btnWords.Unique:
		return h.handleWords(c)
	case btnRandomPair.Unique, btnMore.Unique:
		return h.handleRandomPair(c)
	case btnAddWord.Unique:
		return h.handleAddWord(c)
	case btnNewDictionary.Unique:
		return h.handleNewDictionary(c)
	case btnLogout.Unique:
		return h.handleLogout(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique:
		return h.handleMainMenu(c)
	}

	// Handle by Data prefix (dynamic buttons)
	if id, ok := parseCallbackID(data, dictionaryPrefix); ok {
		return h.handleDictionarySelection(c, id)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleDictionaries shows the dictionaries of the user
func (h *Handler) handleDictionaries(c tele.Context) error {
	userID := c.Sender().ID
	u := h.user(userID)
	ctx, cancel := requestContext()
	defer cancel()

	if err := u.session.ReloadDictionaries(ctx); err != nil {
		h.logger.Warn("Failed to reload dictionaries, showing cached list",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	st := u.session.Snapshot()

	text := "📚 Твои словари:"
	if len(st.Dictionaries) == 0 {
		text = "У тебя пока нет словарей"
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, d := range st.Dictionaries {
		rows = append(rows, markup.Row(markup.Data(dictionaryLabel(d, st.SelectedDictionaryID), dictionaryPrefix+strconv.Itoa(d.ID))))
	}
	rows = append(rows, markup.Row(btnNewDictionary), markup.Row(btnBack))
	markup.Inline(rows...)

	return h.show(c, text, markup)
}

// handleDictionarySelection makes a dictionary the selected one
func (h *Handler) handleDictionarySelection(c tele.Context, dictionaryID int) error {
	userID := c.Sender().ID
	u := h.user(userID)
	ctx, cancel := requestContext()
	defer cancel()

	h.logger.Info("Handling dictionary selection",
		zap.Int("dictionary_id", dictionaryID),
		zap.Int64("user_id", userID),
	)

	u.session.HandleSelectChange(ctx, dictionaryID)
	h.ResetState(userID)

	return h.show(c, mainMenuText(u.session.Snapshot()), mainMenuMarkup())
}

// handleWords lists the words of the selected dictionary
func (h *Handler) handleWords(c tele.Context) error {
	st := h.user(c.Sender().ID).session.Snapshot()

	if st.SelectedDictionaryID == 0 {
		return h.fail(c, "Сначала выбери словарь")
	}
	if st.Error != "" {
		return h.fail(c, st.Error)
	}
	if len(st.Words) == 0 {
		return h.fail(c, "В словаре пока нет слов")
	}

	d, _ := domain.FindDictionary(st.Dictionaries, st.SelectedDictionaryID)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnAddWord),
		markup.Row(btnBack),
	)
	return h.show(c, formatWords(d.Name, st.Words), markup)
}

// handleRandomPair shows a random word-translation pair
func (h *Handler) handleRandomPair(c tele.Context) error {
	u := h.user(c.Sender().ID)

	word := u.words.RandomPair(u.session.Snapshot().Words)
	if word == nil {
		return h.fail(c, "В словаре пока нет слов")
	}

	text := fmt.Sprintf("🎲 Случайная пара:\n\n📝 %s\n🔄 %s", word.Word, word.Translation)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMore),
		markup.Row(btnBack),
	)
	return h.show(c, text, markup)
}

// handleAddWord starts the word input flow
func (h *Handler) handleAddWord(c tele.Context) error {
	userID := c.Sender().ID

	if h.user(userID).session.Snapshot().SelectedDictionaryID == 0 {
		return h.fail(c, "Сначала выбери словарь")
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
	return h.show(c, "Отправь слово", cancelMarkup())
}

// handleNewDictionary asks for the name of a new dictionary
func (h *Handler) handleNewDictionary(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingDictionary})
	return h.show(c, "Введи название нового словаря", cancelMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	wasAuthenticating := h.AwaitingCredentials(userID)
	h.ResetState(userID)

	if wasAuthenticating || !h.user(userID).session.Snapshot().Authenticated {
		return h.show(c, welcomeText, welcomeMarkup())
	}
	return h.show(c, mainMenuText(h.user(userID).session.Snapshot()), mainMenuMarkup())
}

func dictionaryLabel(d domain.Dictionary, selectedID int) string {
	if d.ID == selectedID {
		return "✅ " + d.Name
	}
	return d.Name
}

// formatWords renders a numbered word list, truncated to maxListedWords
func formatWords(dictionaryName string, words []domain.Word) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 %s (%d):\n\n", dictionaryName, len(words))

	for i, w := range words {
		if i == maxListedWords {
			fmt.Fprintf(&b, "… и ещё %d", len(words)-maxListedWords)
			break
		}
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, w.Word, w.Translation)
	}
	return strings.TrimRight(b.String(), "\n")
}
