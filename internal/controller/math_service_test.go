package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	cases := map[int64]string{
		0: "1",
		1: "1",
		5: "120",
		// 25! не влезает в int64 — проверяем big-арифметику.
		25: "15511210043330985984000000",
	}
	for n, want := range cases {
		got, err := Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), "n=%d", n)
	}

	_, err := Factorial(-1)
	assert.ErrorIs(t, err, ErrNegativeArgument)
}

func TestFibonacci(t *testing.T) {
	cases := map[int64]string{
		0:  "0",
		1:  "1",
		2:  "1",
		10: "55",
		// F(100) за пределами int64.
		100: "354224848179261915075",
	}
	for n, want := range cases {
		got, err := Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), "n=%d", n)
	}

	_, err := Fibonacci(-5)
	assert.ErrorIs(t, err, ErrNegativeArgument)
}

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = Mean([]float64{-1, 1})
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = Mean(nil)
	assert.ErrorIs(t, err, ErrEmptyValues)
}
