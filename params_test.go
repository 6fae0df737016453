package probatix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalSize(t *testing.T) {
	size, err := OptimalSize(1000, 0.01)
	require.NoError(t, err)
	require.Equal(t, uint(9592), size)
	require.Zero(t, size%8)

	// Tiny capacities floor at MinSize.
	size, err = OptimalSize(1, 0.5)
	require.NoError(t, err)
	require.Equal(t, MinSize, size)
}

func TestOptimalSizeRejectsBadInputs(t *testing.T) {
	_, err := OptimalSize(0, 0.01)
	require.ErrorIs(t, err, ErrInvalidParameter)

	for _, rate := range []float64{0, 1, -0.5, 1.5} {
		_, err := OptimalSize(1000, rate)
		require.ErrorIs(t, err, ErrInvalidParameter, "rate %v", rate)
	}
}

func TestOptimalHashCount(t *testing.T) {
	k, err := OptimalHashCount(9592, 1000)
	require.NoError(t, err)
	require.Equal(t, uint(7), k)

	// Clamped at both ends.
	k, err = OptimalHashCount(8, 1000000)
	require.NoError(t, err)
	require.Equal(t, uint(1), k)

	k, err = OptimalHashCount(100000, 10)
	require.NoError(t, err)
	require.Equal(t, MaxHashCount, k)
}

func TestOptimalHashCountRejectsBadInputs(t *testing.T) {
	_, err := OptimalHashCount(0, 1000)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = OptimalHashCount(1000, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFalsePositiveRate(t *testing.T) {
	// A filter sized for 1000 elements at 1% should realize roughly 1%
	// once it holds 1000 elements.
	rate, err := FalsePositiveRate(9592, 7, 1000)
	require.NoError(t, err)
	require.InDelta(t, 0.01, rate, 0.003)

	// More insertions always mean a worse rate.
	worse, err := FalsePositiveRate(9592, 7, 2000)
	require.NoError(t, err)
	require.Greater(t, worse, rate)
	require.LessOrEqual(t, worse, 1.0)
}

func TestFalsePositiveRateRejectsBadInputs(t *testing.T) {
	_, err := FalsePositiveRate(0, 7, 100)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = FalsePositiveRate(9592, 0, 100)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = FalsePositiveRate(9592, 7, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestMemoryBytes(t *testing.T) {
	require.Equal(t, uint(1), MemoryBytes(8))
	require.Equal(t, uint(2), MemoryBytes(9))
	require.Equal(t, uint(1199), MemoryBytes(9592))
}

func TestNormalizeSize(t *testing.T) {
	require.Equal(t, MinSize, NormalizeSize(0))
	require.Equal(t, MinSize, NormalizeSize(1))
	require.Equal(t, uint(8), NormalizeSize(8))
	require.Equal(t, uint(16), NormalizeSize(9))
	require.Equal(t, uint(16), NormalizeSize(16))
}

func TestOptimalParametersDeterministic(t *testing.T) {
	first, err := OptimalParameters(1000, 0.01)
	require.NoError(t, err)
	second, err := OptimalParameters(1000, 0.01)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.GreaterOrEqual(t, first.Size, MinSize)
	require.Zero(t, first.Size%8)
	require.GreaterOrEqual(t, first.HashCount, uint(1))
	require.LessOrEqual(t, first.HashCount, MaxHashCount)
	require.Equal(t, first.Size/8, first.MemoryBytes)
}
