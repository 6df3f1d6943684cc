package main

import (
	"bytes"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"gold-price-telegram-bot/config"
	"gold-price-telegram-bot/internal/alert"
	"gold-price-telegram-bot/internal/commands"
	"gold-price-telegram-bot/internal/scheduler"
	"gold-price-telegram-bot/internal/scrape"
	"gold-price-telegram-bot/internal/server"
	"gold-price-telegram-bot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	scraper := scrape.NewScraper(cfg.Source)

	// The bot is optional: without a token the API still serves, and
	// delivery endpoints answer with an error envelope.
	var sender alert.Sender
	var bot *telegram.Bot
	if cfg.TelegramConfigured() {
		var err error
		bot, err = telegram.NewBot(telegram.BotConfig{
			Token:          cfg.Telegram.BotToken,
			ChatID:         cfg.Telegram.ChatID,
			Debug:          cfg.Debug,
			UpdatesTimeout: 60,
		})
		if err != nil {
			log.Errorf("Failed to create bot: %v", err)
		} else {
			sender = bot
		}
	}

	alerts := alert.NewService(scraper, sender)

	sched := scheduler.NewScheduler(cfg.Schedule, alerts)
	if err := sched.RegisterAll(); err != nil {
		log.Fatalf("Failed to register scheduled tasks: %v", err)
	}
	sched.Start()

	if bot != nil {
		go handleUpdates(bot, alerts, cfg)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		sched.Stop()
		log.Info("Shutting down...")
		os.Exit(0)
	}()

	logStartup(cfg)

	if err := server.New(cfg, alerts, sender).Run(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}
}

func setupLogging(cfg *config.Config) {
	log.SetLevel(log.InfoLevel)
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("Starting gold price bot...")
}

func logStartup(cfg *config.Config) {
	log.Infof("🚀 Server is running on port %d", cfg.Port)
	if cfg.TelegramConfigured() {
		log.Info("📱 Telegram Bot Token: Configured ✅")
		log.Infof("💬 Chat ID: %s", cfg.Telegram.ChatID)
	} else {
		log.Warn("📱 Telegram Bot Token: Not configured ❌")
	}
	log.Infof("🕸️ Gold price source: %s", cfg.Source.GoldPriceURL)
	log.Info("📊 Request logging: Enabled ✅")
	log.Info("🔒 CORS: Enabled ✅")
}

func handleUpdates(bot *telegram.Bot, alerts *alert.Service, cfg *config.Config) {
	for update := range bot.GetUpdatesChannel() {
		if update.Message == nil || !update.Message.IsCommand() {
			log.Debug("Received non-command update")
			continue
		}
		handleCommand(bot, alerts, cfg, update)
	}
}

func handleCommand(bot *telegram.Bot, alerts *alert.Service, cfg *config.Config, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			stackBuf := make([]byte, 1024)
			stackSize := runtime.Stack(stackBuf, false)
			stackTrace := bytes.TrimRight(stackBuf[:stackSize], "\x00")
			log.Errorf("Recovered from panic: %v\nStack trace: %s", r, stackTrace)
		}
	}()

	chatID := update.Message.Chat.ID

	var reply string
	switch update.Message.Command() {
	case "start":
		reply = commands.CommandStart(cfg)
	case "price":
		var err error
		if reply, err = commands.CommandPrice(alerts, chatID); err != nil {
			log.Error(err)
			return
		}
	default:
		reply = commands.CommandHelp(cfg)
	}

	if reply == "" {
		return
	}
	if _, err := bot.SendTo(chatID, reply); err != nil {
		log.Errorf("Failed to send reply: %v", err)
	}
}
