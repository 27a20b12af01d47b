package structural

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/structured-data-validator/internal/registry"
)

// Cache memoizes compiled programs by definition name. Concurrent first requests
// for the same name share one compilation. Failed compilations are not cached.
type Cache struct {
	programs     sync.Map // name -> *Program
	group        singleflight.Group
	compilations atomic.Int64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

var defaultCache = NewCache()

// DefaultCache returns the process-wide cache.
func DefaultCache() *Cache {
	return defaultCache
}

// Program returns the compiled program for def, compiling it on first use.
func (c *Cache) Program(def *registry.Definition) (*Program, error) {
	if def == nil {
		return Compile(def)
	}
	if p, ok := c.programs.Load(def.Name); ok {
		return p.(*Program), nil
	}

	v, err, _ := c.group.Do(def.Name, func() (any, error) {
		if p, ok := c.programs.Load(def.Name); ok {
			return p, nil
		}
		c.compilations.Add(1)
		p, err := Compile(def)
		if err != nil {
			return nil, err
		}
		c.programs.Store(def.Name, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Program), nil
}

// Compilations returns how many times the cache has invoked the compiler.
func (c *Cache) Compilations() int64 {
	return c.compilations.Load()
}
