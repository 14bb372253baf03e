package app

import (
	"context"
	"log/slog"

	"ChecklistMapper/internal/config"
	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/infrastructure/sink"
	"ChecklistMapper/internal/infrastructure/telegram"
	"ChecklistMapper/internal/logging"
	"ChecklistMapper/internal/ports"
	"ChecklistMapper/internal/source"
	"ChecklistMapper/internal/usecase"
)

// Application wires configs to the mapping pipeline and its adapters.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := source.NewRegistry()
	registry.Register("csv", source.NewCSVSource(cfg.Source.CSV, baseLogger.With("component", "source.csv")))
	registry.Register("html", source.NewHTMLSource(cfg.Source.HTML, nil, baseLogger.With("component", "source.html")))

	src, err := registry.Resolve(cfg.Source.Kind)
	if err != nil {
		return nil, err
	}

	var sinks []ports.ExportSink
	if cfg.Output.CSV.Enabled {
		sinks = append(sinks, sink.NewCSVSink(cfg.Output.CSV.Dir))
	}
	if cfg.Output.SQLite.Enabled {
		sinks = append(sinks, sink.NewSQLiteSink(cfg.Output.SQLite.Path))
	}
	if cfg.Output.Postgres.Enabled {
		sinks = append(sinks, sink.NewPostgresSink(cfg.Output.Postgres.DSN))
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:      src,
		Sinks:       sinks,
		Notifier:    notifier,
		Metadata:    domain.DatasetMetadata(cfg.Dataset),
		Namespace:   cfg.Mapping.Namespace,
		StrictCodes: cfg.Mapping.Strict,
		Logger:      baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}, nil
}

// Run performs one full recomputation of the three output tables.
func (a *Application) Run(ctx context.Context) error {
	report, err := a.pipeline.Run(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("run finished",
		"distribution_records", report.DistributionRecords,
		"matched_records", report.MatchedRecords,
		"distinct_taxa", report.DistinctTaxa,
		"unmatched_names", len(report.Unmatched),
		"unknown_codes", report.HasUnknownCodes())
	return nil
}
