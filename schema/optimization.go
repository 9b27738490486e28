// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

// OptimizationOptions groups the compile-time hints consumed by the
// component compiler. Every sub-object is merged over its default table
// during resolution: user entries win, default entries are preserved.
type OptimizationOptions struct {
	// KeyedComposables lists composable functions that receive an injected
	// instance key. User entries are prepended to the default set.
	KeyedComposables []KeyedComposable `json:"keyedComposables,omitempty" yaml:"keyedComposables,omitempty"`

	// TreeShake configures per-target dead-code elimination of composable
	// calls.
	TreeShake TreeShakeOptions `json:"treeShake,omitempty" yaml:"treeShake,omitempty"`

	// AsyncTransforms configures the async-context transform applied to
	// framework entry points.
	AsyncTransforms AsyncTransformsOptions `json:"asyncTransforms,omitempty" yaml:"asyncTransforms,omitempty"`
}

// ResolvedOptimization is the resolved counterpart of
// [OptimizationOptions]; all tables are fully populated.
type ResolvedOptimization struct {
	KeyedComposables []KeyedComposable      `json:"keyedComposables" yaml:"keyedComposables"`
	TreeShake        TreeShakeOptions       `json:"treeShake" yaml:"treeShake"`
	AsyncTransforms  AsyncTransformsOptions `json:"asyncTransforms" yaml:"asyncTransforms"`
}

// KeyedComposable identifies one composable function whose calls receive an
// injected key argument at the given position.
type KeyedComposable struct {
	Name           string `json:"name" yaml:"name"`
	Source         string `json:"source,omitempty" yaml:"source,omitempty"`
	ArgumentLength int    `json:"argumentLength" yaml:"argumentLength"`
}

// TreeShakeOptions configures composable tree-shaking per build target.
type TreeShakeOptions struct {
	Composables ComposableTreeShake `json:"composables,omitempty" yaml:"composables,omitempty"`
}

// ComposableTreeShake maps import sources to composable names that are
// stripped from the named target's bundle.
type ComposableTreeShake struct {
	Server map[string][]string `json:"server,omitempty" yaml:"server,omitempty"`
	Client map[string][]string `json:"client,omitempty" yaml:"client,omitempty"`
}

// AsyncTransformsOptions configures which functions and object-literal
// properties are wrapped to preserve async context.
type AsyncTransformsOptions struct {
	AsyncFunctions    []string            `json:"asyncFunctions,omitempty" yaml:"asyncFunctions,omitempty"`
	ObjectDefinitions map[string][]string `json:"objectDefinitions,omitempty" yaml:"objectDefinitions,omitempty"`
}

// Default keyed composables. User-supplied entries are prepended, so a user
// entry naming the same composable shadows the default for compilers that
// take the first match.
func defaultKeyedComposables() []KeyedComposable {
	return []KeyedComposable{
		{Name: "callOnce", Source: "#app", ArgumentLength: 3},
		{Name: "defineNuxtComponent", Source: "#app", ArgumentLength: 2},
		{Name: "useState", Source: "#app", ArgumentLength: 2},
		{Name: "useFetch", Source: "#app", ArgumentLength: 3},
		{Name: "useAsyncData", Source: "#app", ArgumentLength: 3},
		{Name: "useLazyAsyncData", Source: "#app", ArgumentLength: 3},
		{Name: "useLazyFetch", Source: "#app", ArgumentLength: 3},
	}
}

// Composables stripped from the server bundle.
func defaultServerTreeShake() map[string][]string {
	return map[string][]string{
		"vue": {
			"onMounted", "onUpdated", "onUnmounted",
			"onBeforeMount", "onBeforeUpdate", "onBeforeUnmount",
			"onRenderTracked", "onRenderTriggered",
			"onActivated", "onDeactivated",
		},
		"#app": {"definePayloadReviver", "definePageMeta"},
	}
}

// Composables stripped from the client bundle.
func defaultClientTreeShake() map[string][]string {
	return map[string][]string{
		"vue":  {"onServerPrefetch", "onRenderTracked", "onRenderTriggered"},
		"#app": {"definePayloadReducer", "definePageMeta", "onPrerenderRoutes"},
	}
}

func defaultAsyncTransforms() AsyncTransformsOptions {
	return AsyncTransformsOptions{
		AsyncFunctions: []string{"defineNuxtPlugin", "defineNuxtRouteMiddleware"},
		ObjectDefinitions: map[string][]string{
			"defineNuxtComponent": {"asyncData", "setup"},
			"defineNuxtPlugin":    {"setup"},
			"definePageMeta":      {"middleware", "validate"},
		},
	}
}
