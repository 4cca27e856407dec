// Package types defines the shared interfaces and value types used across
// nixup: the filesystem abstraction, the external command runner, the
// interactive prompter, and the value types that flow between the
// provisioning stages.
package types
