// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// SERVER_ALLOWED_ORIGINS is split on commas; surrounding blanks and empty
// entries are dropped, so "a, b," yields ["a" "b"].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if structured, ok := cfg.(*StructuredConfig); ok {
		structured.Server.AllowedOrigins = cleanOrigins(structured.Server.AllowedOrigins)
	}

	return nil
}

func cleanOrigins(origins []string) []string {
	var cleaned []string
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			cleaned = append(cleaned, origin)
		}
	}
	return cleaned
}
