package notify

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// OpsNotifier mirrors escalation events to a channel watched by the
// operations team, independent of the per-recipient email/in-app fan-out.
type OpsNotifier interface {
	EscalationRaised(complaintID uint, complaintTitle, escalatedBy, reason string, escalatedAt time.Time) error
}

// TelegramNotifier posts escalation alerts to a fixed admin chat.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
	Logger *zap.Logger
}

// NewTelegramNotifier authorizes the bot and returns a notifier bound to
// the given chat.
func NewTelegramNotifier(token string, chatID int64, log *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot auth failed: %w", err)
	}
	bot.Debug = false
	log.Info("telegram notifier authorized", zap.String("account", bot.Self.UserName))

	return &TelegramNotifier{BotAPI: bot, ChatID: chatID, Logger: log}, nil
}

// EscalationRaised posts a one-line alert for the escalation event.
func (t *TelegramNotifier) EscalationRaised(complaintID uint, complaintTitle, escalatedBy, reason string, escalatedAt time.Time) error {
	text := fmt.Sprintf(
		"Complaint #%d escalated\nTitle: %s\nBy: %s\nAt: %s\nReason: %s",
		complaintID, complaintTitle, escalatedBy,
		escalatedAt.Format("2006-01-02 15:04"), reason,
	)
	msg := tgbotapi.NewMessage(t.ChatID, text)
	if _, err := t.BotAPI.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
