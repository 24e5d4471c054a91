// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package xsync implements extra synchronization tools.
package xsync

import "sync"

// Latch is a one-shot signal that can be waited for. Once triggered it never
// changes state, it's forever triggered.
type Latch struct {
	muTrigger sync.Mutex
	wait      chan struct{}
}

// NewLatch returns an un-triggered latch.
func NewLatch() *Latch {
	return &Latch{
		wait: make(chan struct{}),
	}
}

// Trigger the latch. Triggering an already triggered latch is a no-op.
func (l *Latch) Trigger() {
	l.muTrigger.Lock()
	defer l.muTrigger.Unlock()

	if l.Test() {
		return
	}
	close(l.wait)
}

// Wait blocks until the latch is triggered.
func (l *Latch) Wait() {
	<-l.wait
}

// Test checks whether the latch has been triggered, without blocking.
func (l *Latch) Test() bool {
	select {
	case <-l.wait:
		return true
	default:
		return false
	}
}

// WaitChan returns a channel to select on: it is closed when the latch
// triggers.
func (l *Latch) WaitChan() <-chan struct{} {
	return l.wait
}
