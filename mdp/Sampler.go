// Package mdp implements the building blocks shared by all solvers of
// finite Markov Decision Processes: samplers over enumerable states and
// actions, the MDP and Bandit interfaces, and the policy and value
// containers that solvers read and write.
package mdp

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// State is the constraint satisfied by state types. Any comparable
// value type can be used as a state.
type State interface {
	comparable
}

// Action is the constraint satisfied by action types. Any comparable
// value type can be used as an action.
type Action interface {
	comparable
}

// Enumerable is implemented by types which can list every one of their
// values. The receiver is never inspected, so the zero value of the
// type can be used to enumerate it.
type Enumerable[T comparable] interface {
	comparable
	Values() []T
}

// Sampler is a fixed, non-empty, ordered collection of items which
// can be iterated over in construction order or sampled from uniformly.
//
// A Sampler owns its source of randomness. Samplers constructed with
// the same seed produce the same sequence of draws.
type Sampler[T comparable] struct {
	items []T
	rng   *rand.Rand
}

// NewSampler returns a new Sampler over items, drawing random numbers
// from a source seeded with seed. NewSampler panics if items is empty.
func NewSampler[T comparable](items []T, seed uint64) *Sampler[T] {
	return NewSamplerFromSource(items, rand.NewSource(seed))
}

// NewSamplerFromSource returns a new Sampler over items which draws
// random numbers from src. This allows multiple Samplers to share a
// single source. NewSamplerFromSource panics if items is empty.
func NewSamplerFromSource[T comparable](items []T,
	src rand.Source) *Sampler[T] {
	if len(items) == 0 {
		panic(fmt.Sprintf("newSampler: cannot create a sampler over 0 "+
			"items of type %T", *new(T)))
	}

	owned := make([]T, len(items))
	copy(owned, items)

	return &Sampler[T]{
		items: owned,
		rng:   rand.New(src),
	}
}

// SamplerOf returns a Sampler over every value of the Enumerable type T
func SamplerOf[T Enumerable[T]](seed uint64) *Sampler[T] {
	var zero T
	return NewSampler(zero.Values(), seed)
}

// Random returns an item chosen uniformly at random
func (s *Sampler[T]) Random() T {
	return s.items[s.rng.Intn(len(s.items))]
}

// Float64 returns a pseudo-random number in [0, 1) drawn from the
// Sampler's source
func (s *Sampler[T]) Float64() float64 {
	return s.rng.Float64()
}

// Items returns all items in construction order. The returned slice
// is a copy and may be modified by the caller.
func (s *Sampler[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of items in the Sampler
func (s *Sampler[T]) Len() int {
	return len(s.items)
}

// Index returns the position of item in construction order, or -1 if
// the item is not in the Sampler.
func (s *Sampler[T]) Index(item T) int {
	for i := range s.items {
		if s.items[i] == item {
			return i
		}
	}
	return -1
}

// String implements the fmt.Stringer interface
func (s *Sampler[T]) String() string {
	return fmt.Sprintf("Sampler | Items: %v", s.items)
}
