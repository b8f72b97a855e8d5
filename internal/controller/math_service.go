package controller

import (
	"errors"
	"math/big"
)

// Ошибки математических операций.
var (
	ErrNegativeArgument = errors.New("value must be non-negative")
	ErrEmptyValues      = errors.New("list cannot be empty")
)

// Factorial считает n! без переполнения (big.Int).
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeArgument
	}
	return new(big.Int).MulRange(1, n), nil
}

// Fibonacci считает F(n), F(0)=0, F(1)=1.
func Fibonacci(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeArgument
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

// Mean считает среднее арифметическое непустого списка.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyValues
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
