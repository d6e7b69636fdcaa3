package main

import (
	"august/app/config"
	"august/app/server"
	"august/app/service/composer"
	"august/app/service/emotion"
	"august/app/service/history"
	"august/app/service/insights"
	"august/app/service/intent"
	"august/app/service/sentiment"
	"august/app/service/triage"
	"august/app/util/mylog"
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, sentiment.New)
	do.Provide(di, intent.New)
	do.Provide(di, emotion.New)
	do.Provide(di, composer.New)
	do.Provide(di, history.New)
	do.Provide(di, insights.New)
	do.Provide(di, triage.New)
	do.Provide(di, server.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	group, groupCtx := errgroup.WithContext(appCtx)

	group.Go(func() error {
		return do.MustInvoke[*server.Service](di).Run(groupCtx)
	})

	if err = group.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}
