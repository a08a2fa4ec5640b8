package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMalformedAmountError(t *testing.T) {
	cause := errors.New("not a decimal")
	err := &MalformedAmountError{Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), `"abc"`)
	assert.True(t, errors.Is(err, cause))

	var target *MalformedAmountError
	wrapped := fmt.Errorf("line 3: %w", err)
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "abc", target.Value)
}

func TestUnparseableDateError(t *testing.T) {
	err := &UnparseableDateError{Value: "третье января"}
	assert.Contains(t, err.Error(), "третье января")
}

func TestAIParseError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("timeout")
		err := &AIParseError{Bank: "Сбербанк", Reason: "backend call failed", Err: cause}
		assert.Contains(t, err.Error(), "Сбербанк")
		assert.Contains(t, err.Error(), "timeout")
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("without cause", func(t *testing.T) {
		err := &AIParseError{Bank: "ВТБ", Reason: "no valid transactions in reply"}
		assert.Contains(t, err.Error(), "no valid transactions")
		assert.NoError(t, errors.Unwrap(err))
	})
}
