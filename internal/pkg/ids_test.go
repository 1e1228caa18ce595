package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNewSessionID(t *testing.T) {
	// When: two session ids are generated
	first, err := GenerateNewSessionID()
	require.NoError(t, err)

	second, err := GenerateNewSessionID()
	require.NoError(t, err)

	// Then: both are valid and distinct UUIDs
	_, err = uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateGameID(t *testing.T) {
	id, err := GenerateGameID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
