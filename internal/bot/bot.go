// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/phuslu/log"

	"github.com/pdiddy/techaware/pkg/types"
)

const updateTimeoutSeconds = 30

// telegramAPI is the part of *tgbotapi.BotAPI the bot uses. Tests
// supply a stub.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot runs the Telegram side of TechAware: long-polling for commands,
// maintaining the subscriber list, and pushing the daily digest.
type Bot struct {
	api         telegramAPI
	subs        *Subscribers
	frontendURL string
}

// New connects to the Telegram API with the configured token.
func New(cfg types.BotConfig, subs *Subscribers) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token is required (set .secrets/telegram-bot-token or bot.token)")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}

	frontendURL := cfg.FrontendURL
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	log.Info().Str("username", api.Self.UserName).Msg("telegram bot connected")
	return &Bot{api: api, subs: subs, frontendURL: frontendURL}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil && update.CallbackQuery.Data == "subscribe" {
		b.handleSubscribe(update.CallbackQuery)
		return
	}
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	switch update.Message.Command() {
	case "start":
		b.handleStart(update.Message)
	case "help":
		b.handleHelp(update.Message)
	case "status":
		b.handleStatus(update.Message)
	case "unsubscribe":
		b.handleUnsubscribe(update.Message)
	}
}

func (b *Bot) handleStart(m *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(m.Chat.ID, welcomeMessage(m.From.FirstName))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📬 Subscribe to Daily Digests", "subscribe"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🌐 Visit TechAware", b.frontendURL),
		),
	)
	b.send(msg)
}

func (b *Bot) handleSubscribe(q *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		log.Error().Err(err).Msg("answering callback query")
	}

	userID := strconv.FormatInt(q.From.ID, 10)
	added, err := b.subs.Add(Subscriber{
		UserID:       userID,
		Username:     q.From.UserName,
		FirstName:    q.From.FirstName,
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("saving subscription")
		return
	}

	text := subscribedMessage
	if !added {
		text = alreadySubscribedMessage
	}

	// Telegram omits the originating message from callback queries once
	// it is older than 48 hours; send a fresh message instead of editing.
	if q.Message == nil {
		b.send(tgbotapi.NewMessage(q.From.ID, text))
		return
	}

	edit := tgbotapi.NewEditMessageText(q.Message.Chat.ID, q.Message.MessageID, text)
	if _, err := b.api.Send(edit); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("editing subscription message")
	}
}

func (b *Bot) handleUnsubscribe(m *tgbotapi.Message) {
	userID := strconv.FormatInt(m.From.ID, 10)
	removed, err := b.subs.Remove(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("removing subscription")
		return
	}

	text := unsubscribedMessage
	if !removed {
		text = notSubscribedMessage
	}
	b.send(tgbotapi.NewMessage(m.Chat.ID, text))
}

func (b *Bot) handleHelp(m *tgbotapi.Message) {
	b.send(tgbotapi.NewMessage(m.Chat.ID, helpMessage(b.frontendURL)))
}

func (b *Bot) handleStatus(m *tgbotapi.Message) {
	userID := strconv.FormatInt(m.From.ID, 10)
	sub, ok := b.subs.Get(userID)

	text := statusInactiveMessage
	if ok {
		text = statusActiveMessage(sub.SubscribedAt)
	}
	b.send(tgbotapi.NewMessage(m.Chat.ID, text))
}

func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("sending message")
	}
}

func (b *Bot) sendMarkdown(userID, text string) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad user id %q: %w", userID, err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	_, err = b.api.Send(msg)
	return err
}
