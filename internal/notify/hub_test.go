// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinevault/vinevault/internal/logger"
)

func TestHub_FanOut(t *testing.T) {
	h := NewHub(logger.Nop())
	defer h.Close()

	ch1, unsub1 := h.Subscribe()
	ch2, unsub2 := h.Subscribe()
	defer unsub1()
	defer unsub2()

	h.Notify(Success("Welcome back!", "You have been logged in successfully."))

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, KindSuccess, ev1.Kind)
	assert.Equal(t, ev1, ev2)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(logger.Nop())
	defer h.Close()

	ch, unsub := h.Subscribe()
	unsub()

	_, open := <-ch
	assert.False(t, open)

	// double unsubscribe is harmless
	unsub()
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(logger.Nop())
	defer h.Close()

	_, unsub := h.Subscribe()
	defer unsub()

	// overflow the buffer; Notify must return every time
	for i := 0; i < subscriberBuffer*2; i++ {
		h.Notify(Error("Login failed", "Invalid email or password."))
	}
}

func TestHub_NotifyAfterClose(t *testing.T) {
	h := NewHub(logger.Nop())
	ch, _ := h.Subscribe()

	h.Close()
	h.Notify(Success("Logged out", ""))

	_, open := <-ch
	assert.False(t, open)

	// subscribing after close yields a closed channel
	late, _ := h.Subscribe()
	_, open = <-late
	require.False(t, open)
}
