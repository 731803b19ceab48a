package utility

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetExecutionID_Stable(t *testing.T) {
	first := GetExecutionID()
	assert.NotEqual(t, uuid.Nil, first)
	assert.Equal(t, first, GetExecutionID())
}

func TestResetExecutionID(t *testing.T) {
	first := GetExecutionID()
	second := ResetExecutionID()
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, GetExecutionID())
}
