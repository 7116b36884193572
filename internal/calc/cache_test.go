package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEval(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	cache, err := NewCache(2, WithEcho(&out))
	require.NoError(t, err)

	v, err := cache.Eval("1+2")
	assert.NoError(err)
	assert.Equal(3.0, v)
	assert.Equal("1 + 2\n", out.String())

	// a hit does not scan again
	v, err = cache.Eval("1+2")
	assert.NoError(err)
	assert.Equal(3.0, v)
	assert.Equal("1 + 2\n", out.String())
	assert.Equal(1, cache.Len())

	_, err = cache.Eval("2*2")
	assert.NoError(err)
	_, err = cache.Eval("3*3")
	assert.NoError(err)
	assert.Equal(2, cache.Len())
}

func TestCacheSkipsErrors(t *testing.T) {
	cache, err := NewCache(4)
	require.NoError(t, err)

	_, err = cache.Eval("(1")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 0, cache.Len())
}

func TestCacheInvalidSize(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}
