// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cache

// collection keeps items in insertion order with a key index for
// lookups. Updating an existing item replaces it in place so snapshot
// order is stable across updates.
type collection[K comparable, E any] struct {
	items []E
	index map[K]int
	key   func(E) K
}

func newCollection[K comparable, E any](key func(E) K) *collection[K, E] {
	return &collection[K, E]{
		index: make(map[K]int),
		key:   key,
	}
}

func (c *collection[K, E]) upsert(item E) {
	k := c.key(item)
	if i, ok := c.index[k]; ok {
		c.items[i] = item
		return
	}
	c.index[k] = len(c.items)
	c.items = append(c.items, item)
}

func (c *collection[K, E]) remove(k K) bool {
	i, ok := c.index[k]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, k)
	for j := i; j < len(c.items); j++ {
		c.index[c.key(c.items[j])] = j
	}
	return true
}

func (c *collection[K, E]) get(k K) (E, bool) {
	if i, ok := c.index[k]; ok {
		return c.items[i], true
	}
	var zero E
	return zero, false
}

func (c *collection[K, E]) snapshot() []E {
	result := make([]E, len(c.items))
	copy(result, c.items)
	return result
}
