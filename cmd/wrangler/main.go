package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	Input   string            `yaml:"input"`
	Sheet   string            `yaml:"sheet"`
	Output  string            `yaml:"output"`
	SQLite  string            `yaml:"sqlite"`
	Sources map[string]string `yaml:"sources"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "wrangle":
		cmdWrangle(os.Args[2:])
	case "steps":
		cmdSteps(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: wrangler <command>\n\nCommands:\n  wrangle   Read a survey workbook and write the derived table\n  steps     List pipeline steps and catalog findings\n")
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Input:  "respuestas.xlsx",
		Output: "respuestas_wrangled.csv",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
