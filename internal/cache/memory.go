package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory: кеш в памяти процесса для запуска без Redis.
// Значения хранятся сериализованными, чтобы вызывающий не мог изменить закешированный объект.
type Memory struct {
	c *gocache.Cache
}

// NewMemory создаёт кеш с периодом очистки просроченных записей cleanup.
func NewMemory(cleanup time.Duration) *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, cleanup)}
}

// Get читает значение по ключу в result.
func (m *Memory) Get(_ context.Context, key string, result any) (bool, error) {
	val, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := val.([]byte)
	if !ok {
		return false, fmt.Errorf("cache.memory.Get: unexpected value type %T", val)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return false, fmt.Errorf("cache.memory.Get: %w", err)
	}
	return true, nil
}

// Set сохраняет значение на время expiration.
func (m *Memory) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache.memory.Set: %w", err)
	}
	m.c.Set(key, data, expiration)
	return nil
}

// Invalidate удаляет ключи.
func (m *Memory) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.c.Delete(key)
	}
	return nil
}

// Close ничего не делает.
func (m *Memory) Close() error {
	return nil
}
