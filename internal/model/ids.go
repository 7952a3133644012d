// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation core.
package model

import (
	"sync/atomic"

	"github.com/jeranaias/planchat/internal/clock"
)

// IDSource allocates message identities.
type IDSource interface {
	NewID() MessageID
}

// =============================================================================
// MONOTONIC IDS
// =============================================================================

// MonotonicIDs derives IDs from the clock in Unix milliseconds but never hands
// out the same or a smaller value twice: when two messages land in the same
// millisecond (or the clock steps backwards) the next ID is last+1.
// Safe for concurrent use.
type MonotonicIDs struct {
	clock clock.Clock
	last  atomic.Uint64
}

// NewMonotonicIDs creates a time-derived, strictly increasing ID source.
func NewMonotonicIDs(c clock.Clock) *MonotonicIDs {
	if c == nil {
		c = clock.System{}
	}
	return &MonotonicIDs{clock: c}
}

// NewID returns the next ID.
func (s *MonotonicIDs) NewID() MessageID {
	for {
		last := s.last.Load()
		next := uint64(0)
		if ms := s.clock.Now().UnixMilli(); ms > 0 {
			next = uint64(ms)
		}
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return MessageID(next)
		}
	}
}

// =============================================================================
// SEQUENCE IDS
// =============================================================================

// SequenceIDs hands out 1, 2, 3, ... Safe for concurrent use.
type SequenceIDs struct {
	n atomic.Uint64
}

// NewID returns the next sequence number.
func (s *SequenceIDs) NewID() MessageID {
	return MessageID(s.n.Add(1))
}
