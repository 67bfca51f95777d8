/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"monzo-webhooks-go/internal/models"

	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func Load() (*models.Config, error) {
	level := strings.ToLower(getEnvString("LOG_LEVEL", "info"))
	if _, err := zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level for LOG_LEVEL: %q (%w)", level, err)
	}

	format, err := ParseFormat(getEnvString("OUTPUT_FORMAT", FormatJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid value for OUTPUT_FORMAT: %w", err)
	}

	development, err := getEnvBool("LOG_DEVELOPMENT", false)
	if err != nil {
		return nil, err
	}

	indent, err := getEnvBool("OUTPUT_INDENT", true)
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Logging: models.LoggingConfig{
			Level:       level,
			Development: development,
		},
		Output: models.OutputConfig{
			Format: format,
			Indent: indent,
		},
		Fixtures: models.FixturesConfig{
			ManifestFile: getEnvString("FIXTURES_MANIFEST", ""),
		},
	}, nil
}

// ParseFormat normalises an output format name.
func ParseFormat(value string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(value)); format {
	case FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", value, FormatJSON, FormatYAML)
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	if value := os.Getenv(key); value != "" {
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %q (%w)", key, value, err)
		}
		return boolValue, nil
	}
	return defaultValue, nil
}
