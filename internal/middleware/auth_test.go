package middleware

import (
	"context"
	"testing"

	"easywords/internal/domain"
	"easywords/internal/session"
	"easywords/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

type fakeContext struct {
	tele.Context
	sender    *tele.User
	text      string
	callback  *tele.Callback
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Text() string             { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

type fakeProvider struct {
	sess     *session.Session
	awaiting bool
	acquired int
	released int
}

func (p *fakeProvider) Acquire(ctx context.Context, _ int64) (*session.Session, func()) {
	p.acquired++
	if p.sess.Snapshot().Status == session.StatusUninitialized {
		p.sess.Bootstrap(ctx)
	}
	return p.sess, func() { p.released++ }
}

func (p *fakeProvider) AwaitingCredentials(int64) bool {
	return p.awaiting
}

func newProvider(t *testing.T, authenticated bool) *fakeProvider {
	t.Helper()
	mockAPI := new(testutil.MockAPI)
	values := map[string]string{}
	if authenticated {
		values[domain.KeyAccessToken] = "tok"
		mockAPI.On("ListDictionaries", mock.Anything, "tok").Return([]domain.Dictionary{}, nil)
	}
	sess := session.New(mockAPI, testutil.NewMemoryState(values), testutil.NewTestLogger())
	return &fakeProvider{sess: sess}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authenticated  bool
		awaiting       bool
		text           string
		callback       *tele.Callback
		expectNext     bool
		expectSent     bool
		expectResponse bool
	}{
		{
			name:          "authenticated user passes",
			authenticated: true,
			text:          "hello",
			expectNext:    true,
		},
		{
			name:       "start command is public",
			text:       "/start",
			expectNext: true,
		},
		{
			name:       "command with bot name",
			text:       "/register@easywords_bot",
			expectNext: true,
		},
		{
			name:       "login dialog in progress",
			awaiting:   true,
			text:       "alice",
			expectNext: true,
		},
		{
			name:       "login button is public",
			callback:   &tele.Callback{Unique: "login"},
			expectNext: true,
		},
		{
			name:       "signed-out text is rejected",
			text:       "hello",
			expectSent: true,
		},
		{
			name:           "signed-out button is rejected",
			callback:       &tele.Callback{Unique: "words"},
			expectResponse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newProvider(t, tt.authenticated)
			provider.awaiting = tt.awaiting

			called := false
			next := func(c tele.Context) error {
				called = true
				return nil
			}

			c := &fakeContext{
				sender:   &tele.User{ID: 42},
				text:     tt.text,
				callback: tt.callback,
			}

			err := AuthMiddleware(provider, testutil.NewTestLogger())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectNext, called)
			assert.Equal(t, 1, provider.acquired)
			assert.Equal(t, 1, provider.released)
			if tt.expectSent {
				assert.Equal(t, []interface{}{UnauthorizedText}, c.sent)
			} else {
				assert.Empty(t, c.sent)
			}
			if tt.expectResponse {
				assert.Len(t, c.responses, 1)
				assert.True(t, c.responses[0].ShowAlert)
			}
		})
	}
}

func TestAuthMiddleware_NoSender(t *testing.T) {
	provider := newProvider(t, false)

	err := AuthMiddleware(provider, testutil.NewTestLogger())(func(tele.Context) error {
		t.Fatal("next must not be called")
		return nil
	})(&fakeContext{})

	assert.NoError(t, err)
	assert.Equal(t, 0, provider.acquired)
}
