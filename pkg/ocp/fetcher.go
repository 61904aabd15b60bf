// Package ocp illustrates the Open/Closed Principle: software entities should
// be open for extension but closed for modification.
//
// UserFetcher and PlayerFetcher show the closed-for-extension shape, where
// every new entity needs a new fetcher type. Fetcher is the generic
// replacement: supporting another entity means instantiating Fetcher with a
// new type parameter, not editing existing code.
package ocp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UserFetcher fetches users. It does nothing.
type UserFetcher struct{}

// FetchUsers never invokes completion.
func (UserFetcher) FetchUsers(completion func(ok bool)) {}

// PlayerFetcher fetches players. It was added beside UserFetcher when players
// became a requirement, duplicating its shape. It does nothing.
type PlayerFetcher struct{}

// FetchPlayers never invokes completion.
func (PlayerFetcher) FetchPlayers(completion func(ok bool)) {}

// ErrDecode is returned when the source does not hold a JSON array of T.
var ErrDecode = errors.New("decode fetched items")

// Fetcher fetches a list of T decoded from a JSON source.
// The zero value has no source and fetches an empty list.
type Fetcher[T any] struct {
	source io.Reader
}

// NewFetcher returns a Fetcher that decodes a JSON array of T from source.
func NewFetcher[T any](source io.Reader) Fetcher[T] {
	return Fetcher[T]{source: source}
}

// Fetch decodes the source and passes the items to completion. The source
// must hold exactly one JSON array; trailing data is a decode failure.
// A nil completion is allowed; the source is still consumed. On a decode
// failure completion is not called and the error wraps ErrDecode.
func (f Fetcher[T]) Fetch(completion func(items []T)) error {
	items := []T{}
	if f.source != nil {
		dec := json.NewDecoder(f.source)
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		// The array must be the only value in the source.
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: trailing data", ErrDecode)
		}
		if items == nil {
			items = []T{}
		}
	}
	if completion != nil {
		completion(items)
	}
	return nil
}
