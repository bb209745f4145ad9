// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reporter

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

// Sender is the part of *tgbotapi.BotAPI the Reporter uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Reporter forwards fetch failures to a Telegram admin chat.
// It is nil-safe: if adminID is 0 or the receiver is nil, Notify is a no-op.
type Reporter struct {
	bot     Sender
	adminID int64
}

func New(bot Sender, adminID int64) *Reporter {
	return &Reporter{bot: bot, adminID: adminID}
}

// NewTelegram connects to the bot API. It returns a nil Reporter when token or adminID
// is unset, so reporting stays optional.
func NewTelegram(token string, adminID int64) (*Reporter, error) {
	if token == "" || adminID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot api")
	}

	return New(bot, adminID), nil
}

func (r *Reporter) Notify(msg string) {
	if r == nil || r.adminID == 0 {
		return
	}
	if _, err := r.bot.Send(tgbotapi.NewMessage(r.adminID, msg)); err != nil {
		slog.Error("failed to send failure notification", "err", err)
	}
}
