// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation core.
package model

// listeners is an ordered set of change callbacks.
// Not safe for concurrent use; owners are driven from one event loop.
type listeners[T any] struct {
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (l *listeners[T]) add(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscription[T]{id: id, fn: fn})

	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

// notify calls every listener in registration order. The set is snapshotted
// first so a listener may unsubscribe itself.
func (l *listeners[T]) notify(v T) {
	if len(l.subs) == 0 {
		return
	}
	snapshot := make([]subscription[T], len(l.subs))
	copy(snapshot, l.subs)
	for _, s := range snapshot {
		s.fn(v)
	}
}
