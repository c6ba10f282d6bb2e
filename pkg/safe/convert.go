// Package safe provides range-checked conversions between ledger amounts and chain integers.
package safe

import (
	"errors"
	"fmt"
	"math/big"
)

var errNil = errors.New("nil value")

// Uint64 converts signed integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// BigUint converts a non-negative integer to a chain integer.
func BigUint[T ~int | ~int32 | ~int64](v T) (*big.Int, error) {
	u, err := Uint64(v)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(u), nil
}

// Int64 narrows a chain integer to int64.
func Int64(v *big.Int) (int64, error) {
	if v == nil {
		return 0, errNil
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("value %s out of int64 range", v)
	}
	return v.Int64(), nil
}
