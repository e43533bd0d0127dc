// Command yrpdump decodes replay files and stores the result through the
// configured storage backend.
//
//	yrpdump [-config dir] [-workers n] [-format json|yaml] [-out dir] file.yrp|dir ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/influx"
	"github.com/duellog/yrpdecode/internal/logging"
	intOtel "github.com/duellog/yrpdecode/internal/otel"
	"github.com/duellog/yrpdecode/internal/session"
	"github.com/duellog/yrpdecode/internal/storage"
	"github.com/spf13/viper"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

const appName = "yrpdump"

type options struct {
	configDir string
	workers   int
	format    string
	outDir    string
	files     []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configDir, "config", ".", "directory holding "+config.FileName)
	fs.IntVar(&opts.workers, "workers", 0, "concurrent decodes (default from config)")
	fs.StringVar(&opts.format, "format", "", "memory export format, json or yaml (default from config)")
	fs.StringVar(&opts.outDir, "out", "", "export directory for backends that write files")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] file.yrp|dir ...\n", appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.files = fs.Args()
	if len(opts.files) == 0 {
		fs.Usage()
		return opts, errors.New("no replay files given")
	}
	return opts, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app holds everything set up from config for one run.
type app struct {
	logs    *logging.SlogManager
	logger  *slog.Logger
	closers []func() error

	otel    *intOtel.Provider
	influx  *influx.Manager
	decoder *session.Decoder
	backend storage.Backend
	workers int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	a, err := setup(ctx, opts)
	if a != nil {
		defer a.shutdown()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	files, err := collectFiles(opts.files)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	start := time.Now()
	results := a.decodeAll(ctx, files)
	failed := printSummary(stdout, results, time.Since(start))

	if ex, ok := a.backend.(storage.Exporter); ok && opts.outDir != "" {
		path, err := ex.Export(opts.outDir)
		if err != nil {
			a.logger.Error("Export failed", "dir", opts.outDir, "error", err)
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "exported to %s\n", path)
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// setup loads config and builds logging, telemetry, the decoder and the
// storage backend. The returned app is non-nil whenever something needs
// shutting down.
func setup(ctx context.Context, opts options) (*app, error) {
	a := &app{logs: logging.NewSlogManager()}
	a.logs.Setup(nil, "info", nil)
	a.logger = a.logs.Logger()

	if err := config.Load(opts.configDir); err != nil {
		a.logger.Warn("Failed to load config, using defaults!", "error", err)
		config.LoadDefaults()
	}
	if opts.workers > 0 {
		viper.Set("decode.workers", opts.workers)
	}
	if opts.format != "" {
		viper.Set("storage.memory.format", opts.format)
	}

	if err := a.setupLogging(); err != nil {
		return a, err
	}

	decodeCfg := config.GetDecodeConfig()
	a.workers = max(decodeCfg.Workers, 1)
	decoder, err := session.NewDecoder(a.logger, session.OptionsFromConfig(decodeCfg))
	if err != nil {
		return a, err
	}
	a.decoder = decoder

	a.influx = influx.NewManager(config.GetInfluxConfig(), a.logger,
		filepath.Join(config.GetString("logsDir"), "influx-backup.lp.gz"))
	if err := a.influx.Connect(ctx); err != nil && !errors.Is(err, influx.ErrDisabled) {
		a.logger.Error("Failed to connect to InfluxDB", "error", err)
	}
	a.closers = append(a.closers, a.influx.Close)

	storageCfg := config.GetStorageConfig()
	backend, err := storage.New(storageCfg, a.logger)
	if err != nil {
		return a, fmt.Errorf("failed to create storage backend: %w", err)
	}
	if err := backend.Init(); err != nil {
		return a, fmt.Errorf("failed to initialize %s storage: %w", storageCfg.Type, err)
	}
	a.backend = backend
	a.closers = append(a.closers, backend.Close)
	a.logger.Info("Storage backend initialized", "type", storageCfg.Type)
	return a, nil
}

// setupLogging switches logging to the session log file and adds the OTel
// bridge and Graylog when configured.
func (a *app) setupLogging() error {
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs dir: %w", err)
	}
	sessionStart := time.Now()
	logPath := logging.LogFilePath(logsDir, appName, sessionStart)
	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.closers = append(a.closers, logFile.Close)

	var provider *sdklog.LoggerProvider
	if otelCfg := config.GetOTelConfig(); otelCfg.Enabled {
		otelPath := logging.LogFilePath(logsDir, appName+".otel", sessionStart)
		otelFile, err := os.OpenFile(otelPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open otel log file: %w", err)
		}
		a.closers = append(a.closers, otelFile.Close)
		a.otel, err = intOtel.New(otelCfg, otelFile)
		if err != nil {
			a.logger.Error("Failed to initialize OTel provider", "error", err)
		} else {
			provider = a.otel.LoggerProvider()
			a.logger.Info("OTel provider initialized", "file", otelPath, "endpoint", otelCfg.Endpoint)
		}
	}

	var extra []slog.Handler
	if config.GetBool("graylog.enabled") {
		h, closer, err := logging.NewGELFHandler(config.GetString("graylog.address"), config.GetString("logLevel"))
		if err != nil {
			a.logger.Error("Failed to connect to Graylog", "error", err)
		} else {
			extra = append(extra, h)
			a.closers = append(a.closers, closer.Close)
		}
	}

	a.logs.Setup(logFile, config.GetString("logLevel"), provider, extra...)
	a.logger = a.logs.Logger()
	a.logger.Info("Logging to file", "path", logPath)
	return nil
}

// shutdown closes everything in reverse setup order.
func (a *app) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.otel != nil {
		if err := a.otel.Shutdown(ctx); err != nil {
			a.logger.Warn("OTel shutdown failed", "error", err)
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Shutdown step failed", "error", err)
		}
	}
}
