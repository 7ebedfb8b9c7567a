// Package store defines the persistence interfaces used by the API layer.
//
// Each entity type gets its own small interface so handlers depend only on
// the operations they need and tests can substitute in-memory doubles. The
// MongoDB implementations live in internal/platform/mongodb; map-backed
// test doubles live in internal/mocks.
package store
