package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-5))
	assert.Equal(t, 50, NormalizeLimit(50))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 25}.Offset())
	assert.Equal(t, 50, Params{Page: 3, Limit: 25}.Offset())
	assert.Equal(t, 0, Params{Page: 0, Limit: 25}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 25))
	assert.Equal(t, 1, TotalPages(25, 25))
	assert.Equal(t, 2, TotalPages(26, 25))
}
