// Package repository caches computed simulation results so repeated requests
// for the same configuration skip the engine. Caching is optional at runtime
// and stores derived values only.
package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/Vilduis/SimulaCredit-sub000/internal/config"
	"github.com/Vilduis/SimulaCredit-sub000/internal/simulation"
)

// CacheRepository abstracts the key-value store behind the simulation cache.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Key derives a stable cache key from the canonical JSON of a loan
// configuration.
func Key(loan *config.LoanConfiguration) (string, error) {
	canonical, err := json.Marshal(loan)
	if err != nil {
		return "", fmt.Errorf("failed to derive cache key: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return "simulation:" + hex.EncodeToString(sum[:]), nil
}

// SimulationCache stores simulation results in a CacheRepository as JSON.
type SimulationCache struct {
	cache CacheRepository
}

// NewSimulationCache wraps a CacheRepository. A nil repository yields a
// cache that always misses.
func NewSimulationCache(cache CacheRepository) *SimulationCache {
	return &SimulationCache{cache: cache}
}

// Lookup returns the cached result for the loan, if any.
func (s *SimulationCache) Lookup(loan *config.LoanConfiguration) (*simulation.Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	key, err := Key(loan)
	if err != nil {
		return nil, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	var result simulation.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Store saves the result under the loan's cache key.
func (s *SimulationCache) Store(loan *config.LoanConfiguration, result *simulation.Result) error {
	if s.cache == nil {
		return nil
	}
	key, err := Key(loan)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize simulation result: %w", err)
	}
	return s.cache.Set(key, string(raw))
}
