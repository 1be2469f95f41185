package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"logsink/internal/api"
	"logsink/internal/config"
	"logsink/internal/event"
	"logsink/internal/format"
	"logsink/internal/parser"
	"logsink/internal/pump"
	"logsink/internal/selflog"
	"logsink/internal/sink"
)

var (
	configPath  string
	inputPath   string
	metricsAddr string
	verbose     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pump input lines into the configured sinks",
	Long: `Read text lines from stdin (or a file given with --input), turn each
into a log event and emit it to every sink defined in the configuration
file. The run ends at EOF or on SIGINT/SIGTERM.`,
	Example: `  # Cap an application's log output at 512KB
  some-app 2>&1 | logsink run --config config.yaml

  # Replay an existing file and expose emit counters
  logsink run --config config.yaml --input old.log --metrics-addr :9090`,
	RunE: runPump,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&configPath, "config", "config.yaml",
		"path to configuration file")
	runCmd.Flags().StringVar(&inputPath, "input", "-",
		"input file to read lines from; - means stdin")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "",
		"listen address for the /metrics endpoint; empty disables it")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func runPump(cmd *cobra.Command, _ []string) error {
	// Configure global logger (timestamped, info level by default).
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	// Route the sink library's internal diagnostics through the same logger.
	selflog.Enable(logrus.StandardLogger())

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var fmtr format.Formatter
	switch cfg.Format.Type {
	case "json":
		fmtr = format.NewJSON()
	default:
		fmtr = format.NewText(cfg.Format.TimestampLayout)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	sk, err := buildSinks(cfg, fmtr, reg)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		srv := api.NewServer(reg)
		go func() {
			if err := srv.Run(metricsAddr); err != nil {
				logrus.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	// Cancellable context that listens to OS signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	p := pump.New(sk, parser.New(event.Level(cfg.Level)))
	count, runErr := p.Run(ctx, in)

	if err := sk.Close(); err != nil {
		logrus.Errorf("failed to close sinks: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	logrus.Infof("done, %d events emitted", count)
	return nil
}

// buildSinks assembles the configured sink stack, instrumenting every sink
// with emit counters registered on reg.
func buildSinks(cfg *config.Config, fmtr format.Formatter, reg prometheus.Registerer) (sink.Sink, error) {
	var sinks []sink.Sink
	for i, sc := range cfg.Sinks {
		var built sink.Sink
		var name string
		switch sc.Type {
		case "console":
			s, err := sink.NewConsoleSink(fmtr)
			if err != nil {
				return nil, fmt.Errorf("failed to initialise console sink: %w", err)
			}
			built, name = s, "console"
		case "file":
			limit, err := sc.File.SizeLimitBytes()
			if err != nil {
				return nil, err
			}
			s, err := sink.NewFileSink(sc.File.Path, fmtr, sink.FileOptions{
				SizeLimit: limit,
				Encoding:  sink.Encoding(sc.File.Encoding),
				Buffered:  sc.File.Buffered,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to initialise file sink: %w", err)
			}
			built, name = s, fmt.Sprintf("file:%s", sc.File.Path)
		default:
			// Unreachable after config validation, kept as a guard.
			return nil, fmt.Errorf("unknown sink type: %s", sc.Type)
		}

		instrumented, err := sink.NewMetricsSink(built, reg, name)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, instrumented)
		logrus.Debugf("sink %d: %s", i, name)
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return sink.NewMultiSink(sinks), nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
