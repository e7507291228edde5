package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	handlers "github.com/benefique/cfo-times/pkg/handlers/report"
	"github.com/benefique/cfo-times/pkg/server"
	"github.com/benefique/cfo-times/pkg/services/config"
	"github.com/benefique/cfo-times/pkg/services/generator"
	"github.com/benefique/cfo-times/pkg/store/snapshot"
)

var (
	cfgPath string
	source  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:          "cfotimes-web",
		Short:        "Serve The Financial Times CFO report over HTTP",
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to cfotimes.yaml (default ./cfotimes.yaml or ~/.config/cfotimes/cfotimes.yaml)")
	rootCmd.Flags().StringVar(&source, "source", "", "Snapshot URI to serve (overrides the source setting)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	settings, err := config.Load(config.New(), cfgPath)
	if err != nil {
		return err
	}
	if source != "" {
		settings.Source = source
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	gen, err := generator.New(snapshot.DefaultRegistry())
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	s, err := gen.Load(ctx, settings.Source, snapshot.Options{
		AWSProfile: settings.AWS.Profile,
		AWSRegion:  settings.AWS.Region,
	})
	if err != nil {
		return err
	}

	page, err := gen.Renderer(generator.FormatHTML)
	if err != nil {
		return err
	}
	summary, err := gen.Renderer(generator.FormatJSON)
	if err != nil {
		return err
	}

	reportHandler, err := handlers.NewHandler(s, page, summary)
	if err != nil {
		return fmt.Errorf("failed to prepare report: %w", err)
	}

	logger.Info().
		Str("client", s.Config.ClientName).
		Str("source", settings.Source).
		Msg("report ready")

	webAPI := server.NewWebAPI(server.Config{
		Addr:            settings.Server.Addr,
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		ReadTimeout:     settings.Server.ReadTimeout,
		WriteTimeout:    settings.Server.WriteTimeout,
		RateLimit:       settings.Server.RateLimit,
		RateBurst:       settings.Server.RateBurst,
		Dependencies: server.Dependencies{
			Report: reportHandler,
			Logger: logger,
		},
	})

	return webAPI.Start(ctx)
}
