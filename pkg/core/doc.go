// Package core defines the shared language of the leaptable system.
//
// This package contains:
//   - Dialect identifiers and column types
//   - Ordered records and field declarations
//   - Connection target configuration (TargetConfig)
//   - Error kinds shared by the builder, connection and storage layers
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
