package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/gazetteerhq/gazetteer/api"
	"github.com/gazetteerhq/gazetteer/gazetteer"
	"github.com/gazetteerhq/gazetteer/providers"
)

const version = "1.0.0"

const shutdownTimeout = 10 * time.Second

var (
	app = kingpin.New(
		"gazetteer",
		"IPv4 geolocation proxy service")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GAZETTEER_DEBUG").
		Bool()
	configFile = app.Arg("config-path", "Path to the config.").
			Required().
			File()
)

func init() {
	app.Version(version)
}

func main() {
	godotenv.Load() // nolint: errcheck
	kingpin.MustParse(app.Parse(os.Args[1:]))

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	mainLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	conf, err := parseConfig(*configFile)
	if err != nil {
		mainLog.Fatal().Err(err).Msg("Cannot parse config")
	}

	// The single pooled outbound resource: initialized here, shared
	// by lookup and health paths, torn down on shutdown.
	pooledClient := &http.Client{}
	httpClient := gazetteer.NewHTTPClient(pooledClient,
		conf.GetUserAgent(),
		conf.GetRateLimitInterval(),
		conf.GetRateLimitBurst())

	provider := providers.NewIPAPI(httpClient,
		conf.Provider.BaseURL,
		conf.GetLookupTimeout(),
		conf.GetHealthTimeout())
	service := gazetteer.NewService(provider, newLogger())

	srv := &http.Server{
		Addr:    conf.GetListen(),
		Handler: api.MakeServer(service, version, conf.GetCORSOrigins()),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		srv.Shutdown(ctx) // nolint: errcheck
	}()

	mainLog.Info().
		Str("listen", conf.GetListen()).
		Str("provider", service.ProviderName()).
		Msg("Starting server")

	err = srv.ListenAndServe()

	// ListenAndServe returns once Shutdown has started; tear down
	// the shared outbound pool before the process exits.
	pooledClient.CloseIdleConnections()

	if err != nil && err != http.ErrServerClosed {
		mainLog.Fatal().Err(err).Msg("Server has failed")
	}
}
