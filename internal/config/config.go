// SPDX-License-Identifier: EPL-2.0

// Package config reads decoder defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/shru/dxx"
)

type Config struct {
	BitDepth      dxx.BitDepth
	SensitivityDB []float64
	Gain          []float64
	Workers       int
	OutputDir     string
	LogLevel      logrus.Level
}

// New returns the defaults overridden by SHRU_* variables.
func New() (*Config, error) {
	cfg := &Config{
		BitDepth:      dxx.Depth24,
		SensitivityDB: []float64{-170},
		Gain:          []float64{1},
		Workers:       1,
		OutputDir:     "Results",
		LogLevel:      logrus.InfoLevel,
	}

	var err error
	if v := os.Getenv("SHRU_BIT_DEPTH"); v != "" {
		cfg.BitDepth, err = dxx.ParseBitDepth(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for SHRU_BIT_DEPTH: %w", err)
		}
	}

	cfg.SensitivityDB, err = getEnvAsFloats("SHRU_SENSITIVITY_DB", cfg.SensitivityDB)
	if err != nil {
		return nil, err
	}

	cfg.Gain, err = getEnvAsFloats("SHRU_GAIN", cfg.Gain)
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = getEnvAsInt("SHRU_WORKERS", cfg.Workers)
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid value for SHRU_WORKERS: must be at least 1, got %d", cfg.Workers)
	}

	if v := os.Getenv("SHRU_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if v := os.Getenv("SHRU_LOG_LEVEL"); v != "" {
		cfg.LogLevel, err = logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for SHRU_LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// Calibration is the configured sensitivity and gain.
func (c *Config) Calibration() dxx.Calibration {
	return dxx.Calibration{SensitivityDB: c.SensitivityDB, Gain: c.Gain}
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got '%s'", key, valueStr)
	}

	return value, nil
}

// getEnvAsFloats reads a comma separated list, one value per channel or a
// single value for all of them.
func getEnvAsFloats(key string, defaultValue []float64) ([]float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	values, err := ParseFloats(valueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", key, err)
	}

	return values, nil
}

// ParseFloats parses "a,b,c" into numbers.
func ParseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got '%s'", strings.TrimSpace(p))
		}
		out = append(out, v)
	}

	return out, nil
}
