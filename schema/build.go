// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// BuildOptions groups the bundler-facing options of [BuildConfig].
type BuildOptions struct {
	// Analyze enables bundle analysis. Accepts a bare boolean or an object
	// overriding individual [AnalyzeOptions] fields.
	Analyze AnalyzeInput `env:"ANALYZE" json:"analyze,omitempty" yaml:"analyze,omitempty"`

	// Transpile lists dependencies the bundler must transpile. Empty
	// entries are dropped during resolution.
	Transpile []string `env:"TRANSPILE" json:"transpile,omitempty" yaml:"transpile,omitempty"`

	// Templates are extra build-time templates rendered into the build
	// directory.
	Templates []Template `json:"templates,omitempty" yaml:"templates,omitempty"`
}

// ResolvedBuildOptions is the resolved counterpart of [BuildOptions].
type ResolvedBuildOptions struct {
	Analyze   AnalyzeOptions `json:"analyze" yaml:"analyze"`
	Transpile []string       `json:"transpile" yaml:"transpile"`
	Templates []Template     `json:"templates" yaml:"templates"`
}

// Template describes one build-time template copied or rendered into the
// build directory.
type Template struct {
	// Src is the template source path.
	Src string `json:"src,omitempty" yaml:"src,omitempty"`

	// Dst is the destination path relative to the build directory.
	Dst string `json:"dst,omitempty" yaml:"dst,omitempty"`

	// Filename overrides the destination file name.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// Write controls whether the rendered template is persisted to disk
	// rather than kept in memory.
	Write bool `json:"write,omitempty" yaml:"write,omitempty"`
}

// AnalyzeOptions is the resolved bundle-analysis configuration.
type AnalyzeOptions struct {
	// Enabled toggles analysis during the build.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Template selects the report layout understood by the analyzer.
	Template string `json:"template" yaml:"template"`

	// ProjectRoot anchors relative module paths in the report.
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`

	// Filename is the report output path. "{name}" is substituted with the
	// bundle name by the analyzer.
	Filename string `json:"filename" yaml:"filename"`
}

// AnalyzeInput is the user-supplied analysis setting. It accepts a bare
// boolean toggle or an object; the object form implies enabled and
// overrides individual fields:
//
//	analyze: true
//	analyze: {template: "sunburst", filename: "report.html"}
type AnalyzeInput struct {
	Enabled  *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`

	ProjectRoot string `json:"projectRoot,omitempty" yaml:"projectRoot,omitempty"`
	Filename    string `json:"filename,omitempty" yaml:"filename,omitempty"`
}

// UnmarshalJSON accepts either a bare boolean or an options object.
func (a *AnalyzeInput) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		a.Enabled = &b
		return nil
	}

	type plain AnalyzeInput
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("analyze must be a boolean or an object: %w", err)
	}
	*a = AnalyzeInput(obj)
	if a.Enabled == nil {
		enabled := true
		a.Enabled = &enabled
	}
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (a *AnalyzeInput) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		a.Enabled = &b
		return nil
	}

	type plain AnalyzeInput
	var obj plain
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("analyze must be a boolean or an object: %w", err)
	}
	*a = AnalyzeInput(obj)
	if a.Enabled == nil {
		enabled := true
		a.Enabled = &enabled
	}
	return nil
}

// UnmarshalText implements the boolean shorthand for environment variables
// (NUXT_BUILD_ANALYZE=true).
func (a *AnalyzeInput) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	b, err := strconv.ParseBool(string(text))
	if err != nil {
		return fmt.Errorf("analyze env value must be a boolean: %w", err)
	}
	a.Enabled = &b
	return nil
}

// defaultAnalyzeOptions computes the environment-dependent analysis
// defaults: treemap layout, report anchored at the project root, one report
// file per bundle under the analyze directory.
func defaultAnalyzeOptions(env Environment) AnalyzeOptions {
	return AnalyzeOptions{
		Enabled:     false,
		Template:    "treemap",
		ProjectRoot: env.RootDir,
		Filename:    filepath.Join(env.AnalyzeDir, "{name}.html"),
	}
}
