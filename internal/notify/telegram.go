package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/astrumlab/tzbrief/internal/pkg/doclink"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram delivers notifications through the Bot API sendMessage call.
type Telegram struct {
	token    string
	linkBase string
	apiBase  string
	client   *http.Client
}

func NewTelegram(token, linkBase string) *Telegram {
	return &Telegram{
		token:    token,
		linkBase: linkBase,
		apiBase:  telegramAPIBase,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Telegram) Notify(ctx context.Context, username, documentID, documentTitle string) (string, error) {
	link := doclink.Build(t.linkBase, documentID)
	text := fmt.Sprintf("📋 Вам отправлен новый документ: \"%s\"\n\n🔗 Открыть: %s", documentTitle, link)
	payload := map[string]interface{}{
		"chat_id": "@" + username,
		"text":    text,
		"reply_markup": map[string]interface{}{
			"inline_keyboard": [][]map[string]interface{}{
				{
					{
						"text":    "Открыть документ",
						"web_app": map[string]string{"url": link},
					},
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("telegram api status %d", resp.StatusCode)
	}
	return "Notification sent", nil
}
