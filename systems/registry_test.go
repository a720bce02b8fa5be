package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCoversEveryPhase(t *testing.T) {
	reg := NewSystemRegistry()

	assert.Equal(t, PhaseOrder, reg.IDs())
	for _, phase := range PhaseOrder {
		assert.NotEqual(t, phase, reg.GetName(phase), "phase %s has no display name", phase)
		assert.NotEmpty(t, reg.Category(phase))
	}
}

func TestRegistryUnknownPhase(t *testing.T) {
	reg := NewSystemRegistry()

	assert.Equal(t, "mystery", reg.GetName("mystery"))
	assert.Empty(t, reg.Category("mystery"))
}
