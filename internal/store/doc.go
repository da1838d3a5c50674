// Package store provides the in-memory collections backing the admin API.
//
// Each collection is owned by a store instance guarded by its own RWMutex,
// so every operation (including the delete-and-rebuild and bulk scans) is
// atomic with respect to that collection. Insertion order is the only
// ordering guarantee. Nothing is persisted: state lives as long as the
// process does.
package store
