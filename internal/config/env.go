// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/rafazafar/nuxt/schema"
)

// envPrefix is applied to every `env` tag lookup on the schema types, so
// e.g. the Builder field maps to NUXT_BUILDER.
const envPrefix = "NUXT_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [schema.BuildConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseEnvironment populates the resolution environment from NUXT_-prefixed
// variables. A truthy CI variable additionally switches on test mode, so CI
// runs get the quieter defaults without extra setup.
func parseEnvironment() (schema.Environment, error) {
	var environment schema.Environment
	if err := env.ParseWithOptions(&environment, env.Options{Prefix: envPrefix}); err != nil {
		return schema.Environment{}, fmt.Errorf("error getting env configs: %w", err)
	}

	if ci, err := strconv.ParseBool(os.Getenv("CI")); err == nil && ci {
		environment.Test = true
	}

	return environment, nil
}
