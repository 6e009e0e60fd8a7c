/*
Package main is the entry point of the What Beats Rock terminal client.

It parses the command line, loads configuration, initializes the global logger, wires
the API client, the save slot and the browser account resolver together and hands
control to the game flow. Leaving a game with EXIT ends the process with status 0.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wbrcli/internal/app/api"
	"wbrcli/internal/app/auth"
	"wbrcli/internal/app/console"
	"wbrcli/internal/app/game"
	"wbrcli/internal/app/play"
	"wbrcli/internal/app/storage"
	"wbrcli/internal/configs"
	"wbrcli/internal/pkg/logx"
)

const releaseVersion = "0.3.0"

func main() {
	opts := &cliOptions{}
	err := newCmd(opts, run).Execute()
	if errors.Is(err, game.ErrExitRequested) {
		os.Exit(0)
	}
	if err != nil {
		console.Stdio().Error("Error:", err)
		os.Exit(1)
	}
}

func userAgent() string {
	return fmt.Sprintf("wbr-cli/%s (+https://github.com/arthomnix/wbr-cli)", releaseVersion)
}

// run executes one program run with the parsed command line options.
func run(ctx context.Context, opts *cliOptions) error {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize global logger
	logx.InitGlobalLogger(opts.verbose || cfg.IsDevelopment())
	logx.Logger().Debug().
		Str("environment", cfg.Environment).
		Str("api_base", cfg.APIBase).
		Str("custom", opts.custom).
		Bool("no_login", opts.noLogin).
		Msg("Configuration loaded successfully")

	client, err := api.NewClient(api.Config{
		APIBase:        cfg.APIBase,
		IdentityURL:    cfg.IdentityURL,
		IdentityAPIKey: cfg.IdentityAPIKey,
		AuthCookieName: cfg.AuthCookieName,
		UserAgent:      userAgent(),
		Timeout:        cfg.HTTPTimeout,
		Rate:           cfg.RequestRate,
		Burst:          cfg.RequestBurst,
	})
	if err != nil {
		return err
	}

	savePath, err := storage.Locate(cfg.SaveFile)
	if err != nil {
		return err
	}
	store := storage.NewSaveStore(storage.ServiceConfig{Path: savePath})
	logx.Info("Save slot located", "path", savePath)

	var identity play.Identity
	if !opts.noLogin {
		identity = auth.NewResolver(auth.ResolverConfig{
			CookieDomain: cfg.CookieDomain,
			CookieName:   cfg.AuthCookieName,
		}, auth.KookySource{}, client)
	}

	session := play.New(play.Deps{
		API:      client,
		Identity: identity,
		Store:    store,
		UI:       console.Stdio(),
	})

	return session.Run(ctx, play.Options{CustomHandle: opts.custom})
}
