package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"
	"github.com/csmith/tunelist/export"
	"github.com/csmith/tunelist/matcher"
	"github.com/csmith/tunelist/model"
	"github.com/csmith/tunelist/publish"
)

func main() {
	envflag.Parse()
	_ = slogflags.Logger(slogflags.WithSetDefault(true))

	cfg := configFromFlags()

	library, err := cfg.Library()
	if err != nil {
		slog.Error("Failed to get source", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, library, cfg.Publisher())
	cancel()

	if err != nil {
		slog.Error("Export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, library model.Library, publisher publish.Publisher) error {
	records, err := library.Tracks()
	if err != nil {
		return fmt.Errorf("failed to collect tracks: %w", err)
	}

	if len(records) == 0 {
		slog.Warn("No music files found", "source", cfg.Source)
		return nil
	}

	changes := diff(cfg.OutputPath, records)

	if err := export.Write(cfg.OutputPath, records); err != nil {
		return err
	}

	if publisher == nil {
		return nil
	}

	message := cfg.CommitMessage
	if !changes.Empty() {
		message = fmt.Sprintf("%s (%s)", message, changes)
	}

	if err := publisher.Publish(ctx, message); err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	return nil
}

// diff compares records against whatever was exported last time
func diff(path string, records []model.TrackRecord) matcher.SegmentResult {
	previous, err := export.Read(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to read previous export, treating every track as new", "path", path, "error", err)
	}

	changes := matcher.Segment(previous, records)
	slog.Info(
		"Calculated differences",
		"previous_count", len(previous),
		"current_count", len(records),
		"added", len(changes.Added),
		"removed", len(changes.Removed),
		"changed", len(changes.Changed),
	)

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		for _, track := range changes.Added {
			slog.Debug("Added", "artist", track.Artist, "title", track.Title, "album", track.Album)
		}
		for _, track := range changes.Removed {
			slog.Debug("Removed", "artist", track.Artist, "title", track.Title, "album", track.Album)
		}
	}

	return changes
}
