// Package utils
package utils

import (
	"sync"
	"time"
)

// CachedValue 惰性求值并缓存结果, ttl为0时只在首次访问或失效后重新求值
type CachedValue[T any] struct {
	loadedAt time.Time
	value    *T
	mu       sync.RWMutex
	ttl      time.Duration
	loader   func() *T
}

func NewCachedValue[T any](ttl time.Duration, loader func() *T) *CachedValue[T] {
	return &CachedValue[T]{ttl: ttl, loader: loader}
}

func (cached *CachedValue[T]) fresh() bool {
	if cached.value == nil {
		return false
	}
	return cached.ttl <= 0 || time.Since(cached.loadedAt) <= cached.ttl
}

func (cached *CachedValue[T]) GetValue() *T {
	cached.mu.RLock()
	if cached.fresh() {
		defer cached.mu.RUnlock()
		return cached.value
	}
	cached.mu.RUnlock()

	cached.mu.Lock()
	defer cached.mu.Unlock()
	if cached.fresh() {
		return cached.value
	}
	cached.value = cached.loader()
	cached.loadedAt = time.Now()
	return cached.value
}

// Set 直接替换缓存值
func (cached *CachedValue[T]) Set(value *T) {
	cached.mu.Lock()
	defer cached.mu.Unlock()
	cached.value = value
	cached.loadedAt = time.Now()
}
