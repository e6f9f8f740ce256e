package main

import (
	"flag"
	"hog/config"
	"hog/experiments"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	var runExperiments bool
	flag.BoolVar(&runExperiments, "run_experiments", false, "Runs strategy experiments")
	flag.BoolVar(&runExperiments, "r", false, "Runs strategy experiments (shorthand)")
	flag.Parse()

	if !runExperiments {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	log.Logger = logger

	if err := experiments.Run(os.Stdout, cfg); err != nil {
		log.Error().Err(err).Msg("experiments failed")
		os.Exit(1)
	}
}
