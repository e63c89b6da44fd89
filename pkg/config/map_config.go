package config

import (
	"strconv"
	"sync"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// MapConfig is a Configer backed by a fixed map rather than the environment.
// Tests use it to hand a daemon its configuration without mutating process
// state.
type MapConfig struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMapConfig(entries map[string]string) *MapConfig {
	values := make(map[string]string, len(entries))
	for key, value := range entries {
		values[key] = value
	}

	return &MapConfig{values: values}
}

func (c *MapConfig) LoadFromPath(path string) error {
	return errors.Errorf("MapConfig does not load from files: %s", path)
}

func (c *MapConfig) Load() error {
	return nil
}

// SetKey sets or replaces a single key.
func (c *MapConfig) SetKey(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value
}

func (c *MapConfig) GetKey(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.values[key]
}

func (c *MapConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("Required config key %s is not set", key)
	}

	return val
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	if val := c.GetKey(key); val != "" {
		return val
	}

	return defaultValue
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}
