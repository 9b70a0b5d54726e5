// Package calendar implements the campus calendar engine: the category
// registry, scope resolution, legacy document migration, event mutation and
// the per-day heat aggregation.
//
// Every function is synchronous and side-effect free. Mutations take a
// domain.Calendar and return an updated copy; the input is never modified,
// so the caller owns its working copy and decides when to persist it.
package calendar

import "github.com/google/uuid"

// IDGenerator returns a fresh unique identifier for categories and events.
type IDGenerator func() string

// UUIDGenerator returns random (version 4) UUID strings.
func UUIDGenerator() string {
	return uuid.NewString()
}

// Engine holds the id generator used by operations that create entities.
// Read-only operations are plain functions.
type Engine struct {
	newID IDGenerator
}

// New returns an Engine. A nil generator defaults to UUIDGenerator.
func New(gen IDGenerator) *Engine {
	if gen == nil {
		gen = UUIDGenerator
	}
	return &Engine{newID: gen}
}
