// SPDX-License-Identifier: MIT
package anneal

import "fmt"

// Item is one knapsack object.
type Item struct {
	Weight int
	Profit int
}

// Knapsack is a 0/1 knapsack instance.
type Knapsack struct {
	Capacity int
	Items    []Item
}

// ClassicInstance is the 15-item benchmark with capacity 750.
func ClassicInstance() Knapsack {
	return Knapsack{
		Capacity: 750,
		Items: []Item{
			{70, 135}, {73, 139}, {77, 149}, {80, 150}, {82, 156},
			{87, 163}, {90, 173}, {94, 184}, {98, 192}, {106, 201},
			{110, 210}, {113, 214}, {115, 221}, {118, 229}, {120, 240},
		},
	}
}

// Validate rejects negative numbers.
func (k Knapsack) Validate() error {
	if k.Capacity < 0 {
		return fmt.Errorf("capacity=%d: %w", k.Capacity, ErrInvalidInstance)
	}
	for i, it := range k.Items {
		if it.Weight < 0 || it.Profit < 0 {
			return fmt.Errorf("item %d %+v: %w", i, it, ErrInvalidInstance)
		}
	}
	return nil
}

// Evaluate returns total weight and profit of the selected indices.
func (k Knapsack) Evaluate(selected []int) (weight, profit int) {
	for _, i := range selected {
		weight += k.Items[i].Weight
		profit += k.Items[i].Profit
	}
	return weight, profit
}
