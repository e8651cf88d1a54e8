package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hazyhaar/encuesta-wrangler/pkg/export"
	"github.com/hazyhaar/encuesta-wrangler/pkg/wrangle"
	"github.com/hazyhaar/encuesta-wrangler/pkg/xlsx"
)

func cmdWrangle(args []string) {
	fs := flag.NewFlagSet("wrangle", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	input := fs.String("input", "", "survey workbook (overrides config)")
	output := fs.String("output", "", "CSV output path (overrides config)")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}

	raw, err := xlsx.Load(cfg.Input, cfg.Sheet)
	if err != nil {
		logger.Error("failed to load workbook", "error", err)
		os.Exit(1)
	}
	logger.Info("workbook loaded", "rows", raw.Rows(), "columns", len(raw.Names()))

	for _, f := range wrangle.Findings() {
		logger.Warn("catalog finding", "detail", f)
	}

	p := wrangle.New(logger, wrangle.WithSources(cfg.Sources))
	out, err := p.Run(raw)
	if err != nil {
		logger.Error("wrangle failed", "error", err)
		os.Exit(1)
	}
	logger.Info("table wrangled", "rows", out.Rows(), "columns", len(out.Names()))

	if err := export.WriteCSV(out, cfg.Output); err != nil {
		logger.Error("failed to write csv", "error", err)
		os.Exit(1)
	}
	logger.Info("csv written", "path", cfg.Output)

	if cfg.SQLite != "" {
		if err := export.WriteSQLite(out, cfg.SQLite); err != nil {
			logger.Error("failed to write sqlite", "error", err)
			os.Exit(1)
		}
		logger.Info("sqlite written", "path", cfg.SQLite)
	}
}

func cmdSteps(args []string) {
	fs := flag.NewFlagSet("steps", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	p := wrangle.New(logger, wrangle.WithSources(cfg.Sources))
	fmt.Println("Pipeline steps:")
	fmt.Println()
	for _, s := range p.Steps() {
		n := len(s.Columns)
		if s.Expand != nil {
			fmt.Printf("  %-22s %s  (columns depend on data)\n", s.Name, s.Source)
			continue
		}
		fmt.Printf("  %-22s %s  (%d columns)\n", s.Name, s.Source, n)
	}

	findings := wrangle.Findings()
	if len(findings) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Catalog findings:")
	for _, f := range findings {
		fmt.Printf("  %s\n", f)
	}
}
