package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestID_ValidAndUnique(t *testing.T) {
	id1 := NewRequestID()
	id2 := NewRequestID()

	_, err := uuid.Parse(id1)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
