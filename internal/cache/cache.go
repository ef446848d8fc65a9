package cache

import "container/list"

// LRUCache is a small bounded cache for rendered previews. Not safe for
// concurrent use; the TUI runs on a single event loop.
type LRUCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value any
}

func NewLRUCache(size int) *LRUCache {
	if size < 1 {
		size = 1
	}
	return &LRUCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) (any, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return nil, false
}

func (c *LRUCache) Put(key string, value any) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *LRUCache) Len() int {
	return c.evictList.Len()
}

func (c *LRUCache) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.evictList.Remove(ele)
		delete(c.items, ele.Value.(*entry).key)
	}
}
