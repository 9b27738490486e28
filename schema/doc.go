// Package schema declares the build configuration surface of the framework:
// bundler selection, sourcemap policy, log level, bundle analysis, and
// compile-time optimization hints for the component compiler.
//
// Users supply a partial [BuildConfig] (from a config file, environment
// variables, or flags — see internal/config). [Resolve] turns it into a
// fully-populated [ResolvedConfig] in a single pass: every field gets a
// concrete value, with defaults that may depend on the resolution
// [Environment] (dev mode, test mode, project root) or on sibling fields.
// Explicit user values always win over computed defaults; the resolved
// object is treated as immutable for the remainder of the process.
package schema
