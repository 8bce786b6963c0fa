package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a, b := &thing{1}, &thing{2}

	assert.NotEmpty(t, Name(a))
	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b))

	assert.Equal(t, "Ø", Name(nil))
	var missing *thing
	assert.Equal(t, "Ø", Name(missing))
}
