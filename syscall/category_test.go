package syscall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Has(t *testing.T) {
	c := File | Desc
	assert.True(t, c.Has(File), "expected %v to include File", c)
	assert.False(t, c.Has(Network), "expected %v to not include Network", c)
	assert.True(t, c.Has(File|Desc), "expected %v to include its own bits", c)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "none", Category(0).String())
	assert.Equal(t, "File|Network", (File | Network).String())
}
