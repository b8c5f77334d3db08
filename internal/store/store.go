package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable indicates the durable medium could not be read or written.
// It is never retried here; callers surface it as a service failure.
var ErrUnavailable = errors.New("store unavailable")

// Store persists named collections as whole JSON documents.
//
// Load unmarshals the collection into v. If the collection has never been
// persisted, v keeps its caller-initialized default and that default is
// written out immediately, so subsequent loads of the same name are stable.
// Save overwrites the whole document; the write is atomic with respect to
// readers in the same process, never partial.
//
// There is no record-level update and no locking: every mutation is a full
// read-modify-write by the caller. Two concurrent writers to the same
// collection race (last write wins); callers needing correctness serialize
// per key above this interface.
type Store interface {
	Load(ctx context.Context, name string, v any) error
	Save(ctx context.Context, name string, v any) error
}

func unavailable(op, name string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, op, name, err)
}
