package serde

import (
	"reflect"
	"sync"
)

type fieldCacher struct {
	cache sync.Map
}

func (c *fieldCacher) Load(t reflect.Type) (*BeanDescription, bool) {
	if v, ok := c.cache.Load(t); ok {
		return v.(*BeanDescription), true
	}
	return nil, false
}

func (c *fieldCacher) LoadOrStore(t reflect.Type, desc *BeanDescription) (*BeanDescription, bool) {
	v, ok := c.cache.LoadOrStore(t, desc)
	return v.(*BeanDescription), ok
}
