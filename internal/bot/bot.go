package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/gvklok/jewelrybox/internal/config"
	"github.com/gvklok/jewelrybox/internal/epd"
	"github.com/gvklok/jewelrybox/internal/logging"
	"github.com/gvklok/jewelrybox/internal/render"
)

// Reply texts. Every inbound update gets exactly one reply, drawn from these
// (error replies append the caught error text).
const (
	welcomeReply  = "Welcome to your Jewelry Box! Send me a message to display on the e-paper screen."
	paintedReply  = "Message sent to e-paper display!"
	clearedReply  = "E-paper display cleared!"
	shutdownReply = "Shutting down bot. The display will remain as is. Restart the service to resume."

	rejectControlReply  = "You are not authorized to control this bot."
	rejectMessageReply  = "You are not authorized to send messages to this display."
	rejectClearReply    = "You are not authorized to clear this display."
	rejectShutdownReply = "You are not authorized to shutdown the bot."

	unknownCommandReply = "Unknown command. Send plain text to display it, or use /clear or /shutdown."
)

// api is the slice of the Telegram client the serving loop needs, narrowed
// so tests can substitute a fake.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot relays authorized Telegram messages to the e-paper display. Updates
// are processed strictly one at a time: authorization, render, paint and
// sleep all complete before the next update is read, so the display needs no
// locking.
type Bot struct {
	api          api
	display      epd.Device
	fonts        *render.Fonts
	settings     config.Settings
	authorizedID int64
}

// New authenticates against the Telegram API and assembles the serving loop.
func New(creds *config.Credentials, settings config.Settings, display epd.Device, fonts *render.Fonts) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(creds.Token)
	if err != nil {
		return nil, NewConfigError("telegram authentication failed", err)
	}
	logging.Info("Telegram bot authorized", zap.String("username", client.Self.UserName))

	return &Bot{
		api:          client,
		display:      display,
		fonts:        fonts,
		settings:     settings,
		authorizedID: creds.ChatID,
	}, nil
}

// Run performs the startup display self-test and serves updates until ctx is
// cancelled, the update stream closes, or an authorized /shutdown arrives.
// A failing self-test is fatal. Per-message failures are logged, reported to
// the operator in the reply, and the loop continues.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.selfTest(); err != nil {
		return err
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.settings.PollTimeoutSeconds
	u.AllowedUpdates = []string{"message"}
	updates := b.api.GetUpdatesChan(u)

	logging.Info("Polling for Telegram updates", zap.Int("timeout_seconds", u.Timeout))
	return b.serve(ctx, updates)
}

// selfTest resets the panel once at startup: wake, clear, sleep.
func (b *Bot) selfTest() error {
	if err := b.withAwake(b.display.Clear, "clear display"); err != nil {
		return err
	}
	logging.Info("Display initialized, cleared, and put to sleep",
		zap.Int("width", b.display.Width()),
		zap.Int("height", b.display.Height()),
	)
	return nil
}

// serve drains the updates channel sequentially.
func (b *Bot) serve(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			logging.Info("Shutdown signal received, stopping bot")
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if stop := b.handleUpdate(update); stop {
				b.api.StopReceivingUpdates()
				return nil
			}
		}
	}
}

// handleUpdate processes one update to completion. It returns true when the
// loop should stop serving.
func (b *Bot) handleUpdate(update tgbotapi.Update) bool {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return false
	}

	if !msg.IsCommand() {
		logging.LogUpdate(msg.From.ID, "text", msg.Text)
		b.handleText(msg)
		return false
	}

	logging.LogUpdate(msg.From.ID, "command:"+msg.Command(), msg.Text)
	switch msg.Command() {
	case "start":
		if !b.authorized(msg, "start", rejectControlReply) {
			return false
		}
		b.reply(msg, welcomeReply)

	case "clear":
		if !b.authorized(msg, "clear", rejectClearReply) {
			return false
		}
		if err := b.withAwake(b.display.Clear, "clear display"); err != nil {
			logging.Error("Failed to clear display", zap.Error(err))
			b.reply(msg, "Error clearing display: "+err.Error())
			return false
		}
		logging.Info("Display cleared by command")
		b.reply(msg, clearedReply)

	case "shutdown":
		if !b.authorized(msg, "shutdown", rejectShutdownReply) {
			return false
		}
		logging.Info("Bot shutting down gracefully")
		b.reply(msg, shutdownReply)
		return true

	default:
		if !b.authorized(msg, msg.Command(), rejectControlReply) {
			return false
		}
		b.reply(msg, unknownCommandReply)
	}
	return false
}

// handleText renders the message and runs one paint cycle on the display.
func (b *Bot) handleText(msg *tgbotapi.Message) {
	if !b.authorized(msg, "message", rejectMessageReply) {
		return
	}
	if err := b.showMessage(msg.Text); err != nil {
		logging.Error("Failed to display message", zap.Error(err))
		b.reply(msg, "Error displaying message: "+err.Error())
		return
	}
	b.reply(msg, paintedReply)
}

// authorized compares the sender against the configured chat ID. Mismatches
// get a warning log entry and a rejection reply; no state changes.
func (b *Bot) authorized(msg *tgbotapi.Message, action, rejection string) bool {
	if msg.From.ID == b.authorizedID {
		return true
	}
	logging.LogUnauthorized(msg.From.ID, b.authorizedID, action)
	b.reply(msg, rejection)
	return false
}

// showMessage composes a frame at the message font size and paints it.
func (b *Bot) showMessage(text string) error {
	size := b.settings.MessageFontSize
	frame, err := render.Compose(text, b.fonts.Face(size), size, b.display.Width(), b.display.Height())
	if err != nil {
		return NewRenderError("compose frame", err)
	}
	if err := b.withAwake(func() error {
		return b.display.Paint(frame.Black, frame.Red)
	}, "paint frame"); err != nil {
		return err
	}
	logging.Info("Message sent to display", zap.Int("font_size", size))
	return nil
}

// withAwake wakes the panel, runs op, and always tries to put the panel back
// to sleep afterwards: the sink must never be left active at rest, even when
// the operation in between failed.
func (b *Bot) withAwake(op func() error, what string) error {
	if err := b.display.Wake(); err != nil {
		return NewSinkError("wake display", err)
	}
	var opErr error
	if err := op(); err != nil {
		opErr = NewSinkError(what, err)
	}
	if err := b.display.Sleep(); err != nil {
		if opErr == nil {
			return NewSinkError("sleep display", err)
		}
		logging.Error("Failed to sleep display after earlier error", zap.Error(err))
	}
	return opErr
}

// reply sends exactly one text reply for the inbound message. Send failures
// are logged and swallowed; the loop must keep serving.
func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		logging.Error("Failed to send reply",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Error(err),
		)
	}
}
