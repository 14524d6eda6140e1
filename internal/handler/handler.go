package handler

import (
	"context"
	"sync"
	"time"

	"easywords/internal/domain"
	"easywords/internal/repository"
	"easywords/internal/service"
	"easywords/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds the backend calls made while handling one update
const requestTimeout = 15 * time.Second

// Client is the dictionary service client used by the bot
type Client interface {
	session.API
	service.AuthAPI
	service.DictionaryAPI
	service.WordAPI
}

// StoreFactory returns the persisted state of one Telegram user
type StoreFactory func(userID int64) repository.StateRepository

// user bundles everything the bot keeps per Telegram user
type user struct {
	mu           sync.Mutex
	session      *session.Session
	auth         *service.AuthService
	dictionaries *service.DictionaryService
	words        *service.WordService
	unsubscribe  func()
}

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	client   Client
	storeFor StoreFactory
	logger   *zap.Logger

	users   map[int64]*user
	userMux sync.Mutex

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, client Client, storeFor StoreFactory, logger *zap.Logger) *Handler {
	return &Handler{
		bot:      bot,
		client:   client,
		storeFor: storeFor,
		logger:   logger,
		users:    make(map[int64]*user),
		states:   make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/login", h.handleLogin)
	h.bot.Handle("/register", h.handleRegister)
	h.bot.Handle("/logout", h.handleLogout)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLogin, h.handleLogin)
	h.bot.Handle(&btnRegister, h.handleRegister)
	h.bot.Handle(&btnDictionaries, h.handleDictionaries)
	h.bot.Handle(&btnWords, h.handleWords)
	h.bot.Handle(&btnRandomPair, h.handleRandomPair)
	h.bot.Handle(&btnMore, h.handleRandomPair)
	h.bot.Handle(&btnAddWord, h.handleAddWord)
	h.bot.Handle(&btnNewDictionary, h.handleNewDictionary)
	h.bot.Handle(&btnLogout, h.handleLogout)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnBack, h.handleMainMenu)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Acquire returns the session of a user, bootstrapping it on first use.
// The user is locked until release is called.
func (h *Handler) Acquire(ctx context.Context, userID int64) (*session.Session, func()) {
	u := h.user(userID)
	u.mu.Lock()

	if u.session.Snapshot().Status == session.StatusUninitialized {
		u.session.Bootstrap(ctx)
	}
	return u.session, u.mu.Unlock
}

// AwaitingCredentials reports whether the user is in the middle of login or registration
func (h *Handler) AwaitingCredentials(userID int64) bool {
	switch h.GetState(userID).State {
	case domain.StateWaitingUsername, domain.StateWaitingPassword:
		return true
	}
	return false
}

func (h *Handler) user(userID int64) *user {
	h.userMux.Lock()
	defer h.userMux.Unlock()

	if u, ok := h.users[userID]; ok {
		return u
	}

	store := h.storeFor(userID)
	u := &user{
		session:      session.New(h.client, store, h.logger),
		auth:         service.NewAuthService(h.client, store, h.logger),
		dictionaries: service.NewDictionaryService(h.client, store, h.logger),
		words:        service.NewWordService(h.client, store, h.logger),
	}
	u.unsubscribe = u.session.Subscribe(func(st session.AuthState) {
		h.logger.Info("Authentication changed",
			zap.Int64("user_id", userID),
			zap.Bool("authenticated", st.Authenticated),
		)
	})
	h.users[userID] = u
	return u
}

// forgetUser drops the cached session so the next update bootstraps afresh
func (h *Handler) forgetUser(userID int64) {
	h.userMux.Lock()
	defer h.userMux.Unlock()

	if u, ok := h.users[userID]; ok {
		u.unsubscribe()
		delete(h.users, userID)
	}
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "🔑 Войти",
	}
	btnRegister = tele.Btn{
		Unique: "register",
		Text:   "📝 Зарегистрироваться",
	}
	btnDictionaries = tele.Btn{
		Unique: "dictionaries",
		Text:   "📚 Словари",
	}
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📖 Слова",
	}
	btnRandomPair = tele.Btn{
		Unique: "random_pair",
		Text:   "🎲 Случайная пара",
	}
	btnAddWord = tele.Btn{
		Unique: "add_word",
		Text:   "➕ Добавить слово",
	}
	btnNewDictionary = tele.Btn{
		Unique: "new_dictionary",
		Text:   "🆕 Новый словарь",
	}
	btnLogout = tele.Btn{
		Unique: "logout",
		Text:   "🚪 Выйти",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Отменить",
	}
	btnMore = tele.Btn{
		Unique: "more",
		Text:   "🔄 Ещё",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Назад",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnDictionaries, btnWords),
		menu.Row(btnRandomPair),
		menu.Row(btnAddWord),
		menu.Row(btnNewDictionary, btnLogout),
	)
	return menu
}

// welcomeMarkup returns the keyboard shown to signed-out users
func welcomeMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnLogin, btnRegister))
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}
