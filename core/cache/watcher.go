// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cache

import (
	"sync"

	"github.com/juju/pubsub/v2"
	"gopkg.in/tomb.v2"
)

// CollectionWatcher signals that one or more watched collections
// changed. It sends an initial event on creation, then one event per
// observed change; changes arriving while an event is pending coalesce
// into that event, so consumers see a level-triggered signal.
type CollectionWatcher struct {
	tomb    tomb.Tomb
	changes chan struct{}
	// We can't send down a closed channel, so protect the sending
	// with a mutex and bool. Since you can't really even ask a channel
	// if it is closed.
	closed bool
	mu     sync.Mutex
}

func newCollectionWatcher(hub *pubsub.SimpleHub, topics ...string) *CollectionWatcher {
	// A single entry buffered channel carries the changes. The initial
	// event is sent immediately; since the channel is buffered this
	// doesn't block.
	w := &CollectionWatcher{
		changes: make(chan struct{}, 1),
	}
	w.changes <- struct{}{}

	unsubs := make([]func(), 0, len(topics))
	for _, topic := range topics {
		unsubs = append(unsubs, hub.Subscribe(topic, w.onChange))
	}
	w.tomb.Go(func() error {
		<-w.tomb.Dying()
		for _, unsub := range unsubs {
			unsub()
		}
		return nil
	})

	return w
}

// Changes is part of the core watcher definition.
func (w *CollectionWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Kill is part of the worker.Worker interface.
func (w *CollectionWatcher) Kill() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	// The watcher must be dying or dead before we close the channel.
	// Otherwise readers could fail, but the watcher's tomb would indicate
	// "still alive".
	w.tomb.Kill(nil)
	w.closed = true
	close(w.changes)
}

// Wait is part of the worker.Worker interface.
func (w *CollectionWatcher) Wait() error {
	return w.tomb.Wait()
}

// Stop kills the watcher and waits for it to finish.
func (w *CollectionWatcher) Stop() error {
	w.Kill()
	return w.Wait()
}

func (w *CollectionWatcher) onChange(topic string, data interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if _, ok := data.(Change); !ok {
		logger.Criticalf("programming error: topic %q data expected Change, got %T", topic, data)
		return
	}

	// We explicitly don't send with a select on the dying channel
	// because we are inside the mutex, so no one else can kill the
	// watcher while we send. A pending event already in the buffer
	// covers this change too.
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
