package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hafidaso/CodeTransEval/internal/catalog"
	"github.com/hafidaso/CodeTransEval/internal/metrics"
	"github.com/hafidaso/CodeTransEval/internal/orchestrate"
)

func main() {
	conversion := flag.String("type", "", "conversion to perform: "+strings.Join(catalog.IDs(), ", "))
	noAI := flag.Bool("no-ai", false, "disable AI assistance, pattern conversion only")
	model := flag.String("model", "", "force a specific backend instead of the selector")
	workers := flag.Int("workers", 1, "concurrent file conversions")
	timeout := flag.Duration("timeout", 60*time.Second, "per-file model call timeout")
	preferSpeed := flag.Bool("prefer-speed", false, "weight backend speed over quality")
	metricsDSN := flag.String("metrics-dsn", "", "Postgres DSN for conversion metrics (default $METRICS_PG_DSN)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	_ = godotenv.Load()
	log := newLogger(*verbose)

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <source_dir> <target_dir>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	sourceDir, targetDir := flag.Arg(0), flag.Arg(1)
	if *conversion == "" {
		log.Fatal("-type is required")
	}

	rec := newRecorder(*metricsDSN, log)
	defer rec.Close()

	conv, err := orchestrate.New(nil, rec, log, orchestrate.Options{
		UseAI:        !*noAI,
		ForceBackend: *model,
		Workers:      *workers,
		AITimeout:    *timeout,
		PreferSpeed:  *preferSpeed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer conv.Close()

	res, err := conv.ConvertProject(context.Background(), sourceDir, targetDir, *conversion)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n=== Conversion Results ===")
	fmt.Printf("Type: %s\n", res.ConversionID)
	fmt.Printf("Source: %s\n", res.SourceDir)
	fmt.Printf("Target: %s\n", res.TargetDir)
	fmt.Printf("Files converted: %d\n", len(res.Files))
	fmt.Printf("AI used: %v\n", res.AIUsed)

	if len(res.Errors) > 0 {
		fmt.Printf("\nErrors: %d\n", len(res.Errors))
		for _, e := range res.Errors {
			fmt.Printf("  %s: %s\n", e.File, e.Error)
		}
	}
	if len(res.Warnings) > 0 {
		fmt.Printf("\nWarnings: %d\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}
	fmt.Println("\nConversion completed! Check the target directory for results.")
}

// newLogger honors LOG_LEVEL and LOG_FORMAT from the environment; the
// -v flag forces debug level.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func newRecorder(dsn string, log *logrus.Logger) metrics.Recorder {
	if dsn == "" {
		return metrics.NewFromEnv()
	}
	rec, err := metrics.NewPostgres(dsn)
	if err != nil {
		log.WithError(err).Warn("metrics sink unreachable, recording disabled")
		return metrics.Noop{}
	}
	return rec
}
