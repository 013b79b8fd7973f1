package main

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// randomValues generates size values in [0, max). A zero seed lets the faker
// pick a random one.
func randomValues(size, max int, seed int64) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid number of values: %d", size)
	}
	if max < 1 {
		return nil, fmt.Errorf("invalid maximum value: %d", max)
	}
	faker := gofakeit.New(seed)
	values := make([]int, size)
	for i := range values {
		values[i] = faker.Number(0, max-1)
	}
	return values, nil
}
