// Package storage provides the read-only catalog of sample users and Pokemon.
//
// The package supports two sources for the catalog:
// 1. StorageMemory - the built-in fixtures compiled into the binary.
// 2. StorageFile - a JSON file loaded once at start-up.
//
// Both are immutable after construction and safe for concurrent use.
package storage
