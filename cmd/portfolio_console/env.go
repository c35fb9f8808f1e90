package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bgv/portfolio-console/internal/api"
	"github.com/bgv/portfolio-console/internal/config"
	"github.com/bgv/portfolio-console/internal/session"
)

// appEnv bundles the wired-up collaborators every command needs. The
// session store is injected into the API client as its token source, so a
// 401 from any request evicts the persisted session.
type appEnv struct {
	cfg    config.Config
	logger zerolog.Logger
	store  *session.Store
	client *api.Client
}

// newAppEnv resolves configuration (flags > env > config file > defaults),
// opens the session store, and builds the API client.
func newAppEnv() (*appEnv, error) {
	cfg := config.FromEnv()
	if flagConfig != "" {
		fileCfg, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagSessionDir != "" {
		cfg.SessionDir = flagSessionDir
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	store, err := session.Open(cfg.SessionDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client := api.NewClient(cfg.APIBaseURL, api.Options{
		Timeout: cfg.Timeout(),
		Tokens:  store,
		Logger:  logger,
	})

	return &appEnv{cfg: cfg, logger: logger, store: store, client: client}, nil
}
