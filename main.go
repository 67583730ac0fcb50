package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/badele/keygrabstats/pkg/keygrabstats"
)

type CLI struct {
	Path     string `arg:"" optional:"" help:"KeyGrabber log file (e.g. LOG.TXT)."`
	Format   string `short:"f" default:"csv" enum:"csv,table,json,yaml" help:"Output format (${enum})."`
	Encoding string `short:"e" default:"iso-8859-1" enum:"utf8,iso-8859-1,windows-1252,cp437,cp850" help:"Log file encoding (${enum})."`
	Top      int    `short:"n" default:"0" help:"Only display the N most used keys of each group (0 = all)."`
	Debug    bool   `short:"d" help:"Log parsing statistics on stderr."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("keygrabstats"),
		kong.Description("Compute key and shortcut usage statistics from a KeyGrabber log file."),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, cli.Debug)
	cli.run(os.Stdout, logger)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run reports every failure as a message on stdout and returns normally.
func (c *CLI) run(stdout io.Writer, logger *slog.Logger) {
	if c.Path == "" {
		fmt.Fprintln(stdout, "Failed to parse file because you must pass as first argument the file path.")
		return
	}

	if _, err := os.Stat(c.Path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stdout, "Failed to parse file:%s because file does not exist.\n", c.Path)
		return
	}

	if err := c.analyze(stdout, logger); err != nil {
		logger.Debug("analyze failed", "path", c.Path, "error", err)
		fmt.Fprintf(stdout, "Failed to parse file:%s because a technical reason : %v\n", c.Path, err)
	}
}

func (c *CLI) analyze(stdout io.Writer, logger *slog.Logger) error {
	start := time.Now()

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	format, err := keygrabstats.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	report, stats, err := keygrabstats.Analyze(data, c.Encoding)
	if err != nil {
		return err
	}

	logger.Debug("log parsed",
		"path", c.Path,
		"encoding", c.Encoding,
		"file_size", stats.FileSize,
		"lines", stats.Lines,
		"key_presses", stats.KeyPresses,
		"modifier_tokens", stats.ModifierTokens,
		"dropped_tokens", stats.DroppedTokens,
		"duration", time.Since(start),
	)

	if stats.DroppedTokens > 0 {
		logger.Debug("unclosed bracket tokens dropped", "count", stats.DroppedTokens)
	}

	if err := keygrabstats.Export(stdout, format, report.Top(c.Top), stats); err != nil {
		return fmt.Errorf("error exporting report: %w", err)
	}

	return nil
}
