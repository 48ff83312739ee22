// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import "sync"

// handleTable hands out one handle per Go object, so asking twice for the
// same surface or adapter yields the same C value. Handles are never
// reused, so a stale handle cannot alias a newer object.
type handleTable struct {
	mu    sync.Mutex
	next  uintptr
	byObj map[any]uintptr
	live  map[uintptr]any
}

func newHandleTable() *handleTable {
	return &handleTable{
		byObj: make(map[any]uintptr),
		live:  make(map[uintptr]any),
	}
}

// handle returns the handle of obj, creating it on first use.
// A nil obj maps to 0.
func (t *handleTable) handle(obj any) uintptr {
	if obj == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.byObj[obj]; ok {
		return h
	}
	t.next++
	h := t.next
	t.byObj[obj] = h
	t.live[h] = obj
	return h
}

// lookup returns the object behind h, or nil for 0 and unknown handles.
func (t *handleTable) lookup(h uintptr) any {
	if h == 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live[h]
}

// drop deletes the handle of obj, if any.
func (t *handleTable) drop(obj any) {
	if obj == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.byObj[obj]; ok {
		delete(t.byObj, obj)
		delete(t.live, h)
	}
}

// dropIf deletes the handles of the objects match reports true for.
func (t *handleTable) dropIf(match func(obj any) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for obj, h := range t.byObj {
		if match(obj) {
			delete(t.byObj, obj)
			delete(t.live, h)
		}
	}
}

// len returns the number of live handles.
func (t *handleTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}
