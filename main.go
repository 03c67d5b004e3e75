package main

import (
	"PlantyChat/ai/gpt"
	"PlantyChat/impl/core"
	"PlantyChat/internal/config"
	"PlantyChat/internal/http-server/api"
	"PlantyChat/internal/lib/logger"
	"PlantyChat/internal/lib/sl"
	"PlantyChat/internal/service/shopify"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting planty chat proxy", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(conf, lg)

	shop := shopify.NewService(conf, lg)
	if shop.Configured() {
		handler.SetCatalogService(shop)
		lg.With(
			slog.String("domain", conf.Shopify.StoreDomain),
			sl.Secret("access_token", conf.Shopify.AccessToken),
		).Info("shopify service initialized")
	} else {
		lg.Warn("shopify credentials missing, assistant will answer without products")
	}

	if conf.OpenAI.ApiKey != "" {
		assistant := gpt.NewAssistant(conf, lg)
		handler.SetAssistant(assistant)
		lg.With(
			sl.Secret("openai_key", conf.OpenAI.ApiKey),
			slog.String("chat_model", conf.OpenAI.ChatModel),
			slog.String("embedding_model", conf.OpenAI.EmbeddingModel),
		).Info("assistant initialized")
	} else {
		lg.Warn("openai api key missing, chat requests will be rejected")
	}

	// *** blocking start with http server ***
	err := api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
