package texture

import "sync"

// Resolver resolves a texture path to a decoded image.
type Resolver interface {
	Resolve(path string) *Image
}

// Cache is a concurrency-safe path→Image cache. Load failures are memoized
// as nil entries so missing files are stat'd only once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*Image
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*Image)}
}

// Resolve loads and caches the image at path. Returns nil if it cannot be
// loaded; callers degrade to an untextured fill.
func (c *Cache) Resolve(path string) *Image {
	c.mu.RLock()
	if img, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img, _ := Load(path)

	c.mu.Lock()
	if cached, ok := c.items[path]; ok {
		c.mu.Unlock()
		return cached
	}
	c.items[path] = img
	c.mu.Unlock()

	return img
}
