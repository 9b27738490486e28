// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SourcemapInput is the user-supplied sourcemap setting. It accepts two
// document shapes:
//
//	sourcemap: true                      # applies to both targets
//	sourcemap: {server: true, client: false}
//
// Nil sub-fields mean "not set" and receive target-specific defaults during
// resolution (server: true, client: dev mode).
type SourcemapInput struct {
	Server *bool `json:"server,omitempty" yaml:"server,omitempty"`
	Client *bool `json:"client,omitempty" yaml:"client,omitempty"`
}

// SourcemapOptions is the resolved per-target sourcemap decision.
type SourcemapOptions struct {
	Server bool `json:"server" yaml:"server"`
	Client bool `json:"client" yaml:"client"`
}

// UnmarshalJSON accepts either a bare boolean or a {server, client} object.
// A bare boolean is applied identically to both sub-fields.
func (s *SourcemapInput) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Server = &b
		s.Client = &b
		return nil
	}

	type plain SourcemapInput
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("sourcemap must be a boolean or an object: %w", err)
	}
	*s = SourcemapInput(obj)
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (s *SourcemapInput) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		s.Server = &b
		s.Client = &b
		return nil
	}

	type plain SourcemapInput
	var obj plain
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("sourcemap must be a boolean or an object: %w", err)
	}
	*s = SourcemapInput(obj)
	return nil
}

// UnmarshalText implements the boolean shorthand for environment variables
// (NUXT_SOURCEMAP=true).
func (s *SourcemapInput) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	b, err := strconv.ParseBool(string(text))
	if err != nil {
		return fmt.Errorf("sourcemap env value must be a boolean: %w", err)
	}
	s.Server = &b
	s.Client = &b
	return nil
}

// resolve applies target-specific defaults to unset sub-fields. The server
// build defaults to generating sourcemaps; the client build only does so in
// dev mode.
func (s SourcemapInput) resolve(env Environment) SourcemapOptions {
	out := SourcemapOptions{Server: true, Client: env.Dev}
	if s.Server != nil {
		out.Server = *s.Server
	}
	if s.Client != nil {
		out.Client = *s.Client
	}
	return out
}
