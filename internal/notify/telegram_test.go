package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestTelegram(apiBase string) *Telegram {
	return &Telegram{
		token:    "test-token",
		linkBase: "https://tma.astrum.app",
		apiBase:  apiBase,
		client:   &http.Client{Timeout: time.Second},
	}
}

func TestTelegramNotifySendsMessage(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tg := newTestTelegram(server.URL)
	message, err := tg.Notify(context.Background(), "designer", "550e8400-e29b-41d4-a716-446655440001", "Лендинг для стартапа")
	require.NoError(t, err)
	require.Equal(t, "Notification sent", message)

	require.Equal(t, "@designer", captured["chat_id"])
	text, _ := captured["text"].(string)
	require.Contains(t, text, `"Лендинг для стартапа"`)
	require.Contains(t, text, "https://tma.astrum.app/doc/550e8400-e29b-41d4-a716-446655440001")
	require.Contains(t, captured, "reply_markup")
}

func TestTelegramNotifyRejectsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	tg := newTestTelegram(server.URL)
	_, err := tg.Notify(context.Background(), "designer", "doc-1", "ТЗ")
	require.Error(t, err)
}

func TestMockNotify(t *testing.T) {
	message, err := Mock{}.Notify(context.Background(), "designer", "doc-1", "Бриф")
	require.NoError(t, err)
	require.Equal(t, `Notification would be sent to @designer about "Бриф"`, message)
}
