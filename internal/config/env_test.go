// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafazafar/nuxt/schema"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"NUXT_CONFIG": "/path/to/nuxt.config.json",

		"NUXT_BUILDER":   "webpack",
		"NUXT_SOURCEMAP": "true",
		"NUXT_LOG_LEVEL": "verbose",
		"NUXT_BUILD_ID":  "release-42",

		// Build has a nested prefix: NUXT_ + BUILD_
		"NUXT_BUILD_ANALYZE":   "true",
		"NUXT_BUILD_TRANSPILE": "vue-lib,other-lib",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &schema.BuildConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/nuxt.config.json", cfg.ConfigPath)

	assert.Equal(t, "webpack", cfg.Builder)
	assert.Equal(t, "verbose", cfg.LogLevel)
	assert.Equal(t, "release-42", cfg.BuildID)

	require.NotNil(t, cfg.Sourcemap.Server)
	require.NotNil(t, cfg.Sourcemap.Client)
	assert.True(t, *cfg.Sourcemap.Server)
	assert.True(t, *cfg.Sourcemap.Client)

	require.NotNil(t, cfg.Build.Analyze.Enabled)
	assert.True(t, *cfg.Build.Analyze.Enabled)
	assert.Equal(t, []string{"vue-lib", "other-lib"}, cfg.Build.Transpile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"NUXT_BUILDER":   "rspack",
		"NUXT_LOG_LEVEL": "silent",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &schema.BuildConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "rspack", cfg.Builder)
	assert.Equal(t, "silent", cfg.LogLevel)

	// untouched fields stay unset
	assert.Empty(t, cfg.BuildID)
	assert.Nil(t, cfg.Sourcemap.Server)
	assert.Nil(t, cfg.Sourcemap.Client)
	assert.Nil(t, cfg.Build.Analyze.Enabled)
	assert.Empty(t, cfg.Build.Transpile)
}

func TestParseEnv_InvalidSourcemap(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"NUXT_SOURCEMAP": "not-a-bool"})

	// Act
	cfg := &schema.BuildConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func TestParseEnvironment_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"NUXT_DEV":      "true",
		"NUXT_TEST":     "true",
		"NUXT_ROOT_DIR": "/srv/app",
	}
	setEnvVars(t, envVars)

	// Act
	environment, err := parseEnvironment()

	// Assert
	require.NoError(t, err)
	assert.True(t, environment.Dev)
	assert.True(t, environment.Test)
	assert.Equal(t, "/srv/app", environment.RootDir)
}

func TestParseEnvironment_CISwitchesTestMode(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"CI": "true"})

	// Act
	environment, err := parseEnvironment()

	// Assert
	require.NoError(t, err)
	assert.True(t, environment.Test)
	assert.False(t, environment.Dev)
}

func TestParseEnvironment_CIFalseIgnored(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"CI": "false"})

	// Act
	environment, err := parseEnvironment()

	// Assert
	require.NoError(t, err)
	assert.False(t, environment.Test)
}
