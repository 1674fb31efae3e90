package main

import (
	"context"
	"errors"
	"flag"
	"netreactor"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var config *netreactor.Config

func init() {
	configFilePath := flag.String("c", "./cmd/config.toml", "path to configuration file.")
	flag.Parse()
	config = netreactor.LoadConfig(*configFilePath)
	initLog(config)
}

func initLog(config *netreactor.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(config.Global.LogLevel)
	if err != nil || config.Global.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	log.Info().Msg("starting reactor...")
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Reactor.MaxOpenFiles > 0 {
		netreactor.RaiseOpenFileLimit(config.Reactor.MaxOpenFiles)
	}
	netreactor.InitEventRouter(ctx, config.Events)
	monitor, err := netreactor.NewWakeMonitor(ctx, time.Minute)
	if err != nil {
		log.Fatal().Msgf("can't init wake monitor: %+v", err)
	}

	reactor := netreactor.NewReactor(netreactor.ReactorConfig{
		Name:         config.Reactor.Name,
		Interval:     config.Reactor.Interval(),
		LockOsThread: config.Reactor.LockOsThread,
		Monitor:      monitor,
	})
	err = reactor.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Msgf("reactor terminated: %+v", err)
	}
	log.Info().Msgf("reactor stats: %+v", reactor.Stats())
}
