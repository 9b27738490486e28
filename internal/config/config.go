// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package config

import "github.com/rafazafar/nuxt/schema"

// GetBuildConfig loads and merges the partial build configuration from all
// available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. Config document (path or URL resolved from sources 1 and 2)
//
// Returns the merged partial *schema.BuildConfig along with the resolution
// environment, or an error if any source fails to load.
func GetBuildConfig() (*schema.BuildConfig, schema.Environment, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withFile().
		build()
}
