package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"phyrexian-cardlist/internal/app"
	"phyrexian-cardlist/internal/config"
	"phyrexian-cardlist/internal/fetcher"
	"phyrexian-cardlist/internal/observability"
	"phyrexian-cardlist/internal/scraper"
	"phyrexian-cardlist/internal/storage/textfile"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "phyrexian-cardlist",
	Short: "Выгрузка списка карт сета с phyrexian-mtg.net в текстовый файл",
	Args:  cobra.NoArgs,
	// Ошибки страниц печатаются в консоль и не меняют код выхода
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config overriding built-in defaults")
}

func run() error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	selectors, err := cfg.Selectors()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(observability.LoggerOptions{
		LogPath:    cfg.Observability.LogPath,
		LogLevel:   cfg.Observability.LogLevel,
		MaxSizeMB:  cfg.Observability.MaxSizeMB,
		MaxBackups: cfg.Observability.MaxBackups,
	})
	defer func() { _ = logger.Close() }()

	console := observability.NewConsole(os.Stdout)

	var pages app.PageFetcher
	if cfg.Rod.Enabled {
		rf := fetcher.NewRodFetcher(cfg, logger)
		defer func() {
			if err := rf.Close(); err != nil {
				logger.Warn("Failed to close browser", "error", err.Error())
			}
		}()
		pages = rf
	} else {
		pages = fetcher.NewFetcher(cfg, logger)
	}

	sink, err := textfile.Create(cfg.Output.Path)
	if err != nil {
		return err
	}

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	orchestrator := app.NewOrchestrator(
		cfg,
		logger,
		console,
		pages,
		scraper.NewScraper(selectors, scraper.DefaultSymbols()),
		fetcher.NewPacer(cfg.GetPageDelay()),
	)

	// Ошибка страницы уже показана в консоли; прогон просто заканчивается
	stats, _ := orchestrator.Run(ctx, sink)

	if err := sink.Close(); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}

	logger.Info("Run finished",
		"cards", stats.CardsWritten,
		"pages", stats.PagesProcessed,
		"reason", stats.StoppedReason,
	)
	console.Finished(sink.Path())

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
