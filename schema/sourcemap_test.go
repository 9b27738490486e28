// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSourcemapInput_UnmarshalJSON_Boolean verifies that a bare boolean is
// applied identically to both sub-fields.
func TestSourcemapInput_UnmarshalJSON_Boolean(t *testing.T) {
	for _, raw := range []string{"true", "false"} {
		var input SourcemapInput
		require.NoError(t, json.Unmarshal([]byte(raw), &input))

		require.NotNil(t, input.Server)
		require.NotNil(t, input.Client)
		assert.Equal(t, raw == "true", *input.Server)
		assert.Equal(t, *input.Server, *input.Client)
	}
}

// TestSourcemapInput_UnmarshalJSON_Object verifies the per-target object
// shape, including absent sub-fields staying nil.
func TestSourcemapInput_UnmarshalJSON_Object(t *testing.T) {
	var input SourcemapInput
	require.NoError(t, json.Unmarshal([]byte(`{"server": false}`), &input))

	require.NotNil(t, input.Server)
	assert.False(t, *input.Server)
	assert.Nil(t, input.Client)
}

// TestSourcemapInput_UnmarshalJSON_Invalid verifies the error for shapes
// that are neither boolean nor object.
func TestSourcemapInput_UnmarshalJSON_Invalid(t *testing.T) {
	var input SourcemapInput
	err := json.Unmarshal([]byte(`"yes please"`), &input)
	require.Error(t, err)
}

// TestSourcemapInput_UnmarshalYAML verifies both accepted YAML shapes.
func TestSourcemapInput_UnmarshalYAML(t *testing.T) {
	var boolInput struct {
		Sourcemap SourcemapInput `yaml:"sourcemap"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("sourcemap: true"), &boolInput))
	require.NotNil(t, boolInput.Sourcemap.Server)
	require.NotNil(t, boolInput.Sourcemap.Client)
	assert.True(t, *boolInput.Sourcemap.Server)
	assert.True(t, *boolInput.Sourcemap.Client)

	var objInput struct {
		Sourcemap SourcemapInput `yaml:"sourcemap"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("sourcemap:\n  client: true"), &objInput))
	assert.Nil(t, objInput.Sourcemap.Server)
	require.NotNil(t, objInput.Sourcemap.Client)
	assert.True(t, *objInput.Sourcemap.Client)
}

// TestSourcemapInput_UnmarshalText verifies the env-var boolean shorthand.
func TestSourcemapInput_UnmarshalText(t *testing.T) {
	var input SourcemapInput
	require.NoError(t, input.UnmarshalText([]byte("1")))
	require.NotNil(t, input.Server)
	require.NotNil(t, input.Client)
	assert.True(t, *input.Server)
	assert.True(t, *input.Client)

	var invalid SourcemapInput
	require.Error(t, invalid.UnmarshalText([]byte("maybe")))

	var empty SourcemapInput
	require.NoError(t, empty.UnmarshalText(nil))
	assert.Nil(t, empty.Server)
}
