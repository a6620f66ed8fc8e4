package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

type logger struct {
	lookupLog zerolog.Logger
	healthLog zerolog.Logger
}

func (l *logger) LookupError(ip string, name string, err error) {
	l.lookupLog.Error().Str("provider", name).Str("ip", ip).Err(err).Msg("")
}

func (l *logger) HealthCheck(name string, healthy bool) {
	l.healthLog.Debug().Str("provider", name).Bool("healthy", healthy).Msg("")
}

func newLogger() gazetteer.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		lookupLog: zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "lookup").Logger(),
		healthLog: zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "health").Logger(),
	}
}
