package engine

import (
	"github.com/daystram/tempo/board"
)

// Cache memoises subtree utilities by position, remaining depth and the side
// to move. Entries are never evicted. It is not safe for concurrent use.
type Cache struct {
	table map[cacheKey]float64

	// stats
	hits   int
	misses int
	writes int
}

type cacheKey struct {
	hash  string
	depth int
	side  board.Side
}

func NewCache() *Cache {
	return &Cache{
		table: make(map[cacheKey]float64),
	}
}

func (c *Cache) Get(hash string, depth int, s board.Side) (float64, bool) {
	u, ok := c.table[cacheKey{hash: hash, depth: depth, side: s}]
	if !ok {
		c.misses++
		return 0, false
	}
	c.hits++
	return u, true
}

func (c *Cache) Set(hash string, depth int, s board.Side, u float64) {
	c.writes++
	c.table[cacheKey{hash: hash, depth: depth, side: s}] = u
}

func (c *Cache) Len() int {
	return len(c.table)
}

// Reset drops every entry and the stats.
func (c *Cache) Reset() {
	c.table = make(map[cacheKey]float64)
	c.ResetStats()
}

func (c *Cache) ResetStats() {
	c.hits = 0
	c.misses = 0
	c.writes = 0
}

func (c *Cache) Stats() (int, int, int) {
	return c.hits, c.misses, c.writes
}
