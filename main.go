// main.go
package main

import (
	"TUI_video_metadata/infrastructure/auth"
	"TUI_video_metadata/infrastructure/logger"
	"TUI_video_metadata/infrastructure/provider"
	"TUI_video_metadata/infrastructure/token_manager"
	"TUI_video_metadata/internal/config"
	"TUI_video_metadata/internal/core/usecases"
	"TUI_video_metadata/internal/handler/render"
	"TUI_video_metadata/internal/handler/server"
	"TUI_video_metadata/internal/handler/tui"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"google.golang.org/api/youtube/v3"
)

const appName = "video_metadata_tui"

func main() {
	app := &cli.App{
		Name:  "ytmeta",
		Usage: "Browse YouTube video metadata from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: config.DefaultEnvFile,
				Usage: "Optional .env file read before the environment",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "client-secret",
				Usage: "Path to the Google OAuth client secret JSON",
			},
			&cli.StringFlag{
				Name:  "token-file",
				Usage: "Where the OAuth token is stored",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "Start the interactive browser (default)",
				Action: runTUI,
			},
			{
				Name:      "video",
				Usage:     "Print the metadata of one video",
				ArgsUsage: "<url or id>",
				Action:    runVideo,
			},
			{
				Name:   "logout",
				Usage:  "Revoke and delete the stored token",
				Action: runLogout,
			},
		},
		Action: runTUI,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies global flags on top of the env configuration.
func loadConfig(c *cli.Context) (*config.Configuration, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, err
	}

	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := c.String("client-secret"); v != "" {
		cfg.ClientSecretFile = v
	}
	if v := c.String("token-file"); v != "" {
		cfg.TokenFile = v
	}

	return cfg, nil
}

func newLogger(cfg *config.Configuration) (logger.Logger, error) {
	appLogger, err := logger.NewFileLogger(logger.Config{
		Dir:        cfg.LogDir,
		Prefix:     appName,
		Level:      cfg.LogLevel,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return appLogger, nil
}

func newAuthService(cfg *config.Configuration, tokenService token_manager.TokenService) (auth.AuthenticationService, error) {
	authService, err := auth.NewAuthenticationService(
		[]string{youtube.YoutubeReadonlyScope},
		cfg.ClientSecretFile,
		cfg.CallbackURL,
		tokenService,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	return authService, nil
}

func newVideoUseCase(cfg *config.Configuration, authService auth.AuthenticationService, appLogger logger.Logger) usecases.VideoUseCase {
	youtubeProvider := provider.NewYoutubeProvider(authService, appLogger, provider.CacheConfig{
		Size: cfg.CacheSize,
		TTL:  cfg.CacheTTL,
	})
	return usecases.NewVideoUseCase(youtubeProvider, appLogger)
}

func runTUI(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	appLogger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	tokenService := token_manager.NewTokenService(cfg.TokenFile)

	authService, err := newAuthService(cfg, tokenService)
	if err != nil {
		appLogger.Error("Failed to initialize auth service", err)
		return err
	}

	callbackHandler := server.NewCallbackHandler(appLogger)
	videoUseCase := newVideoUseCase(cfg, authService, appLogger)

	initialModel := tui.NewAppModel(authService, callbackHandler, videoUseCase, tokenService, appLogger, tui.CallbackConfig{
		Addr: cfg.CallbackAddr,
		Path: cfg.CallbackPath,
	})

	p := tea.NewProgram(initialModel, tea.WithAltScreen(), tea.WithContext(c.Context))
	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		return fmt.Errorf("error running TUI: %w", err)
	}
	appLogger.Info("Application finished.")

	return nil
}

func runVideo(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: ytmeta video <url or id>", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	appLogger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer appLogger.Close()

	tokenService := token_manager.NewTokenService(cfg.TokenFile)
	if _, err := tokenService.LoadToken(); err != nil {
		return fmt.Errorf("not signed in, run the TUI first: %w", err)
	}

	authService, err := newAuthService(cfg, tokenService)
	if err != nil {
		return err
	}

	video, err := newVideoUseCase(cfg, authService, appLogger).GetVideoByURL(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, render.VideoDetail(video, 100))
	return nil
}

func runLogout(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	appLogger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer appLogger.Close()

	tokenService := token_manager.NewTokenService(cfg.TokenFile)
	token, err := tokenService.LoadToken()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(c.App.Writer, "Already signed out.")
			return nil
		}
		appLogger.Warning(fmt.Sprintf("Stored token unreadable, deleting it: %v", err))
		return tokenService.DeleteLocalToken()
	}

	authService, err := newAuthService(cfg, tokenService)
	if err != nil {
		return err
	}

	toRevoke := token.RefreshToken
	if toRevoke == "" {
		toRevoke = token.AccessToken
	}
	if err := authService.RevokeToken(c.Context, toRevoke); err != nil {
		// the local copy is removed regardless
		appLogger.Error("Failed to revoke token", err)
	}

	if err := tokenService.DeleteLocalToken(); err != nil {
		return fmt.Errorf("failed to delete local token: %w", err)
	}

	appLogger.Info("Signed out")
	fmt.Fprintln(c.App.Writer, "Signed out.")
	return nil
}
