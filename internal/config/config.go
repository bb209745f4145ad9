// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
	"github.com/pkg/errors"
)

const (
	AITypeGemini = "gemini"
	AITypeOpenAI = "openai"
	AITypeOllama = "ollama"
)

type Config struct {
	APIKey              string        `hcl:"api_key" env:"API_KEY"`
	AIType              string        `hcl:"ai_type" env:"AI_TYPE" default:"gemini"`
	AIBaseURL           string        `hcl:"ai_base_url" env:"AI_BASE_URL"`
	AIModel             string        `hcl:"ai_model" env:"AI_MODEL" default:"gemini-2.5-flash"`
	AITimeout           time.Duration `hcl:"ai_timeout" env:"AI_TIMEOUT" default:"30s"`
	ListenAddr          string        `hcl:"listen_addr" env:"LISTEN_ADDR" default:"127.0.0.1:8088"`
	ViewTTL             time.Duration `hcl:"view_ttl" env:"VIEW_TTL" default:"10m"`
	MaxViews            int           `hcl:"max_views" env:"MAX_VIEWS" default:"1024"`
	TelegramBotToken    string        `hcl:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramAdminChatID int64         `hcl:"telegram_admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID"`
}

// ConfigError is a fatal startup problem. It is never produced at request time.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// Validate checks that the selected provider has what it needs to be reached.
func (c Config) Validate() error {
	switch c.AIType {
	case AITypeGemini, AITypeOpenAI:
		if c.APIKey == "" {
			return &ConfigError{Msg: "API_KEY environment variable not set"}
		}
	case AITypeOllama:
		if c.AIBaseURL == "" {
			return &ConfigError{Msg: fmt.Sprintf("ai_base_url is required when ai_type is %q", AITypeOllama)}
		}
	default:
		return &ConfigError{Msg: fmt.Sprintf("unsupported ai_type %q", c.AIType)}
	}

	if c.AIModel == "" {
		return &ConfigError{Msg: "ai_model must not be empty"}
	}
	if c.AITimeout <= 0 {
		return &ConfigError{Msg: "ai_timeout must be positive"}
	}
	if c.MaxViews <= 0 {
		return &ConfigError{Msg: "max_views must be positive"}
	}

	return nil
}

var (
	cfg     Config
	loadErr error
	once    sync.Once
)

// Load reads the configuration once per process and validates it.
func Load() (Config, error) {
	once.Do(func() {
		cfg, loadErr = load(aconfig.Config{
			Files: []string{"./config.hcl", "./config.local.hcl", "$HOME/.config/morocco-time/config.hcl"},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})
	})

	return cfg, loadErr
}

func load(acfg aconfig.Config) (Config, error) {
	var c Config

	if err := aconfig.LoaderFor(&c, acfg).Load(); err != nil {
		return Config{}, errors.Wrap(err, "failed to load config")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
