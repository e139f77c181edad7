package reedsolomon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpfs/erasure/reedsolomon"
)

// TestRecoveryThreshold 验证恢复门限的计算与边界报错。
func TestRecoveryThreshold(t *testing.T) {
	_, err := reedsolomon.RecoveryThreshold(1)
	assert.ErrorIs(t, err, reedsolomon.ErrNotEnoughValidators)

	_, err = reedsolomon.RecoveryThreshold(90000)
	assert.ErrorIs(t, err, reedsolomon.ErrTooManyValidators)

	k, err := reedsolomon.RecoveryThreshold(6)
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	k, err = reedsolomon.RecoveryThreshold(100)
	require.NoError(t, err)
	assert.Equal(t, 34, k)
}

// TestCreateBoundaries 验证 Create 对验证人数量上下界的报错。
func TestCreateBoundaries(t *testing.T) {
	_, err := reedsolomon.Create(70000)
	assert.ErrorIs(t, err, reedsolomon.ErrTooManyValidators)

	_, err = reedsolomon.Create(1)
	assert.ErrorIs(t, err, reedsolomon.ErrNotEnoughValidators)
}

// TestCreatePowerOfTwoRounding 验证 n/k 的推导:n 向上取到 2 的幂,
// k 向下取到 2 的幂,且 2k <= n。
func TestCreatePowerOfTwoRounding(t *testing.T) {
	c, err := reedsolomon.Create(6)
	require.NoError(t, err)
	assert.Equal(t, 8, c.N())
	assert.Equal(t, 2, c.K())

	c, err = reedsolomon.Create(100)
	require.NoError(t, err)
	assert.Equal(t, 128, c.N())
	assert.Equal(t, 32, c.K())
	assert.LessOrEqual(t, 2*c.K(), c.N())
}

func TestEncodeRejectsEmptyPayload(t *testing.T) {
	c, err := reedsolomon.Create(6)
	require.NoError(t, err)

	_, err = c.Encode(nil)
	assert.ErrorIs(t, err, reedsolomon.ErrPayloadSizeIsZero)

	_, err = c.Encode([]byte{})
	assert.ErrorIs(t, err, reedsolomon.ErrPayloadSizeIsZero)
}
