// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the env and envPrefix tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Notifier.AllowedPhones = trimPhones(cfg.Notifier.AllowedPhones)
	return nil
}

// trimPhones drops the blanks around each number of a "a, b" style list
// and skips empty entries.
func trimPhones(phones []string) []string {
	if len(phones) == 0 {
		return nil
	}

	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
