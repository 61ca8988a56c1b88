package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"chainforge/node"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagDifficulty uint
		flagLevel      string
		flagPeers      []string
		flagPort       uint16
		flagResolve    time.Duration
		flagTimeout    time.Duration
	)

	pflag.UintVarP(&flagDifficulty, "difficulty", "d", 4, "number of leading zero hex characters required of a valid proof")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringSliceVar(&flagPeers, "peer", nil, "seed peer address (host:port), repeatable")
	pflag.Uint16VarP(&flagPort, "port", "p", 5000, "port to serve the node API on")
	pflag.DurationVar(&flagResolve, "resolve-interval", 0, "interval between automatic consensus resolutions, zero to disable")
	pflag.DurationVar(&flagTimeout, "fetch-timeout", 5*time.Second, "timeout for fetching a peer's chain")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Node initialization.
	n, err := node.New(log, node.Config{
		Port:            flagPort,
		Difficulty:      flagDifficulty,
		SeedPeers:       flagPeers,
		ResolveInterval: flagResolve,
		FetchTimeout:    flagTimeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not initialize node")
		return failure
	}

	// Run the node in its own goroutine so we can wait for an interrupt
	// signal to proceed with shutdown.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		err := n.Run()
		if err != nil {
			log.Warn().Err(err).Msg("node failed")
			close(failed)
		} else {
			close(done)
		}
	}()

	select {
	case <-sig:
		log.Info().Msg("shutting down on interrupt")
	case <-done:
	case <-failed:
		return failure
	}
	go func() {
		<-sig
		log.Fatal().Msg("forced exit on second interrupt")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = n.Stop(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut node down cleanly")
		return failure
	}

	return success
}
