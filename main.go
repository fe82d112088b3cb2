package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"warsoracle/config"
	"warsoracle/engine"
	"warsoracle/game"
	"warsoracle/metrics"
	"warsoracle/snapshot"
	"warsoracle/utils"
)

var outputFormats = []string{"json", "csv"}

func main() {
	configDir := flag.String("config", ".", "Directory containing warsoracle.cfg.json")
	mapPath := flag.String("map", "", "Map JSON file")
	unitsPath := flag.String("units", "", "Units JSON file")
	rulesPath := flag.String("rules", "", "Rules JSON file (standard rules if empty)")
	teamsPath := flag.String("teams", "", "Team metadata JSON file")
	side := flag.Int("side", 0, "Player slot to analyze")
	format := flag.String("format", "", "Output format: json or csv")
	goroutines := flag.Int("goroutines", 0, "Number of goroutines for per-unit searches")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	overrideString("rulesFile", *rulesPath)
	overrideString("teamsFile", *teamsPath)
	overrideString("output.format", *format)
	if *goroutines > 0 {
		config.Set("goroutines", *goroutines)
	}

	setupLogging(os.Stderr)

	if *mapPath == "" || *unitsPath == "" {
		log.Error().Msg("both -map and -units are required")
		flag.Usage()
		os.Exit(2)
	}
	outputFormat := strings.ToLower(config.GetString("output.format"))
	if utils.FindIndex(outputFormats, outputFormat) < 0 {
		log.Error().Msgf("unknown output format %q, want one of %v", outputFormat, outputFormats)
		os.Exit(2)
	}

	report, err := run(snapshot.Files{
		MapPath:   *mapPath,
		UnitsPath: *unitsPath,
		RulesPath: config.GetString("rulesFile"),
		TeamsPath: config.GetString("teamsFile"),
	}, game.Side(*side))
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		os.Exit(1)
	}

	if err := write(os.Stdout, report, outputFormat); err != nil {
		log.Error().Err(err).Msg("writing report failed")
		os.Exit(1)
	}
}

func run(files snapshot.Files, side game.Side) (*engine.Report, error) {
	snap, err := snapshot.LoadFiles(files)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("loaded %dx%d map with %d units", snap.Grid.Width(), snap.Grid.Height(), len(snap.Units))

	options := []engine.Option{
		engine.WithGoroutines(config.GetInt("goroutines")),
		engine.WithHighRiskThreshold(config.GetFloat("highRiskThreshold")),
	}
	if config.GetBool("metrics.enabled") {
		options = append(options, engine.WithMetrics())
	}

	analyzer, err := engine.NewAnalyzer(snap.Grid, snap.Units, snap.Rules, snap.Teams, options...)
	if err != nil {
		return nil, err
	}
	report, err := analyzer.Analyze(side)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("side %s: %d threats (%d high risk), %d captures, material %s",
		side, len(report.Threats), report.Summary.HighRisk, len(report.Captures), report.Summary.Material)

	if config.GetBool("metrics.enabled") {
		writer, err := metrics.NewWriter(config.GetString("metrics.dir"))
		if err != nil {
			return nil, err
		}
		if err := writer.WriteAnalysisRecords([]metrics.AnalysisMetric{report.Metric}); err != nil {
			return nil, err
		}
		log.Info().Msgf("stored analysis metrics in %s", writer.Path())
	}

	return report, nil
}

func write(w io.Writer, report *engine.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "csv":
		return report.WriteCSV(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func overrideString(key, value string) {
	if value != "" {
		config.Set(key, value)
	}
}

func setupLogging(out io.Writer) {
	var level zerolog.Level
	switch strings.ToUpper(config.GetString("logLevel")) {
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	case "TRACE":
		level = zerolog.TraceLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
