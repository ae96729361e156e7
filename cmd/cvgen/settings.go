package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/harvard-cv/internal/config"
	"github.com/jonathan/harvard-cv/internal/logger"
	"github.com/jonathan/harvard-cv/internal/schemas"
	"github.com/jonathan/harvard-cv/internal/types"
	"go.uber.org/zap"
)

// loadSettings layers the config file over the environment and builds the logger.
func loadSettings() (*config.Config, *zap.Logger, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	cfg := &config.Config{}
	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			return nil, nil, err
		}
	}

	merged := cfg.MergeWithDefaults(*envCfg)
	if err := merged.Validate(); err != nil {
		return nil, nil, err
	}

	return &merged, logger.New(verbose || merged.Verbose), nil
}

// readCV loads a CV JSON file, checking it against the CV schema before decoding.
func readCV(path string) (*types.CVRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV file: %w", err)
	}

	if err := schemas.ValidateCV(data); err != nil {
		return nil, err
	}

	var rec types.CVRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CV JSON: %w", err)
	}
	return &rec, nil
}
