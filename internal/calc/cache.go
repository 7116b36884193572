package calc

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Cache remembers the results of recently evaluated sources. Failed
// evaluations are not remembered.
type Cache struct {
	results *lru.Cache
	opts    []Option
}

// NewCache creates a cache holding up to size results. The options are used
// for every expression the cache builds.
func NewCache(size int, opts ...Option) (*Cache, error) {
	results, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating result cache of size %d", size)
	}
	return &Cache{results, opts}, nil
}

// Eval returns the value of source, evaluating it only on a miss.
func (c *Cache) Eval(source string) (float64, error) {
	if v, ok := c.results.Get(source); ok {
		return v.(float64), nil
	}
	expr, err := NewExpression(source, c.opts...)
	if err != nil {
		return 0, err
	}
	result, err := expr.Calculate()
	if err != nil {
		return 0, err
	}
	c.results.Add(source, result)
	return result, nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.results.Len()
}
