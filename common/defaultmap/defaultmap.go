package defaultmap

import (
	"cmp"
	"slices"
	"sync"
)

// Thread safe map that creates missing values on first access
type DefaultSafemap[K cmp.Ordered, V any] interface {
	Get(key K) V
	Update(key K, fn func(V) V)
	Count() int
	Foreach(it func(K, V) bool)
}

type defaultmapImpl[K cmp.Ordered, V any] struct {
	data        map[K]V
	mutex       sync.RWMutex
	defaultFunc func() V
}

func New[K cmp.Ordered, V any](defaultFunc func() V) DefaultSafemap[K, V] {
	return &defaultmapImpl[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

func (h *defaultmapImpl[K, V]) getLocked(key K) V {
	v, ex := h.data[key]
	if !ex {
		v = h.defaultFunc()
		h.data[key] = v
	}
	return v
}

func (h *defaultmapImpl[K, V]) Get(key K) V {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.getLocked(key)
}

// Update replaces the value for key with fn(current) under the write lock.
func (h *defaultmapImpl[K, V]) Update(key K, fn func(V) V) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.data[key] = fn(h.getLocked(key))
}

func (h *defaultmapImpl[K, V]) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.data)
}

// Foreach visits entries in ascending key order until it returns false.
func (h *defaultmapImpl[K, V]) Foreach(it func(K, V) bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	keys := make([]K, 0, len(h.data))
	for k := range h.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !it(k, h.data[k]) {
			break
		}
	}
}
