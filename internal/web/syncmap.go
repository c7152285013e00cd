package web

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// syncMap is a typed wrapper over sync.Map holding per-session element state.
type syncMap[K comparable, V any] struct {
	m sync.Map
}

func (m *syncMap[K, V]) String() string {
	var lines []string
	m.m.Range(func(key, value any) bool {
		lines = append(lines, "\t"+fmt.Sprint(key.(K))+":"+fmt.Sprint(value.(V))+",")
		return true
	})
	sort.Strings(lines)
	return "{\n" + strings.Join(lines, "\n") + "\n}"
}

func (m *syncMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (m *syncMap[K, V]) Set(key K, value V) {
	m.m.Store(key, value)
}

func (m *syncMap[K, V]) Len() int {
	n := 0
	m.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
