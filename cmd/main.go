// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0x0BSoD/moroccoTime/internal/config"
	"github.com/0x0BSoD/moroccoTime/internal/fetcher"
	"github.com/0x0BSoD/moroccoTime/internal/llm"
	"github.com/0x0BSoD/moroccoTime/internal/reporter"
	"github.com/0x0BSoD/moroccoTime/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		generator   fetcher.Generator
		attribution string
	)
	switch cfg.AIType {
	case config.AITypeOpenAI:
		generator = llm.NewOpenAIGenerator(cfg.AIBaseURL, cfg.APIKey)
		attribution = "Powered by OpenAI"
	case config.AITypeOllama:
		generator, err = llm.NewOllamaGenerator(cfg.AIBaseURL)
		attribution = "Powered by Ollama"
	default:
		generator, err = llm.NewGeminiGenerator(ctx, cfg.APIKey, cfg.AIBaseURL)
		attribution = "Powered by Google Gemini"
	}
	if err != nil {
		log.Printf("[ERROR] failed to create %s generator: %v", cfg.AIType, err)
		return
	}
	log.Printf("[INFO] using %s generator (model: %s)", cfg.AIType, cfg.AIModel)

	var failures fetcher.Reporter
	rep, err := reporter.NewTelegram(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
	if err != nil {
		log.Printf("[ERROR] failed to create reporter, failures will only be logged: %v", err)
	} else if rep != nil {
		failures = rep
		log.Printf("[INFO] reporting fetch failures to telegram chat %d", cfg.TelegramAdminChatID)
	}

	tmpl, err := web.LoadTemplates()
	if err != nil {
		log.Printf("[ERROR] failed to load templates: %v", err)
		return
	}

	var (
		timeFetcher = fetcher.New(generator, failures, cfg.AIModel, cfg.AITimeout)
		views       = web.NewRegistry(timeFetcher, cfg.MaxViews, cfg.ViewTTL)
	)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           web.NewRouter(web.NewServer(views, attribution), tmpl),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[ERROR] failed to shut down http server: %v", err)
		}
	}()

	log.Printf("[INFO] listening on %s", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] failed to run http server: %v", err)
			return
		}

		log.Printf("[INFO] http server stopped")
	}
}
