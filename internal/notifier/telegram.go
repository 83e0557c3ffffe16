package notifier

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender delivers notifications to an external channel in addition to the
// in-app notification store.
type Sender interface {
	Send(title, message string) error
}

// NoopSender is used when no external channel is configured.
type NoopSender struct{}

var _ Sender = (*NoopSender)(nil)

func (NoopSender) Send(string, string) error { return nil }

// TelegramSender pushes notifications to a Telegram chat via the Bot API.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

var _ Sender = (*TelegramSender)(nil)

func NewTelegramSender(botToken string, chatID int64) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

func (t *TelegramSender) Send(title, message string) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("<b>%s</b>\n%s", html.EscapeString(title), html.EscapeString(message)))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
