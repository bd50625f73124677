package connector

import (
	"fmt"
	"sync"
)

// Factory builds the connector instance for one chain+network pair.
type Factory func(chain, network string) (AMM, error)

// Registry owns one connector per chain+network pair. It replaces the hidden
// static singleton map of the original design: the composition root constructs
// a Registry, registers factories, and hands it to callers explicitly.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	instances map[string]AMM
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]AMM),
	}
}

// Register installs the factory for a chain identifier.
func (r *Registry) Register(chain string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[chain] = factory
}

// Get returns the connector for (chain, network), building it on first use.
// An unknown chain identifier is a constructor-time failure.
func (r *Registry) Get(chain, network string) (AMM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s:%s", chain, network)
	if instance, ok := r.instances[key]; ok {
		return instance, nil
	}

	factory, ok := r.factories[chain]
	if !ok {
		return nil, NewUnsupportedChain(chain)
	}
	instance, err := factory(chain, network)
	if err != nil {
		return nil, err
	}
	r.instances[key] = instance
	return instance, nil
}
