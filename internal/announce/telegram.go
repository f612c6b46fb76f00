package announce

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramAnnouncer struct {
	token    string
	endpoint string
	chatID   int64
	timeout  time.Duration

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func NewTelegramAnnouncer(token string, chatID int64, timeout time.Duration) *TelegramAnnouncer {
	announcer := NewTelegramAnnouncerWithEndpoint(token, tgbotapi.APIEndpoint, chatID)
	announcer.timeout = timeout
	return announcer
}

// NewTelegramAnnouncerWithEndpoint points the bot at a custom Bot API server.
// The endpoint is a format string taking the token and the method name.
func NewTelegramAnnouncerWithEndpoint(token, endpoint string, chatID int64) *TelegramAnnouncer {
	return &TelegramAnnouncer{
		token:    token,
		endpoint: endpoint,
		chatID:   chatID,
	}
}

func (a *TelegramAnnouncer) Announce(_ context.Context, announcement Announcement) error {
	bot, err := a.client()
	if err != nil {
		return err
	}

	message := tgbotapi.NewMessage(a.chatID, announcement.Text())
	message.DisableWebPagePreview = true

	if _, err := bot.Send(message); err != nil {
		return fmt.Errorf("could not send telegram message: %w", err)
	}

	return nil
}

// client connects lazily so a Telegram outage never blocks startup.
func (a *TelegramAnnouncer) client() (*tgbotapi.BotAPI, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.bot != nil {
		return a.bot, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(a.token, a.endpoint, &http.Client{Timeout: a.timeout})
	if err != nil {
		return nil, fmt.Errorf("could not create telegram bot: %w", err)
	}

	a.bot = bot
	return bot, nil
}
