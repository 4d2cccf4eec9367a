package layout

import (
	"fmt"
	"math"
	"strconv"

	perrors "github.com/matzehuels/cardpie/pkg/errors"
)

// WeightedSlice is one entry of the chart before proportions are known.
type WeightedSlice struct {
	Key    string  // Card whose artwork fills the wedge
	Weight float64 // Number of decks
	Name   string  // Deck name shown in the label
}

// Slice is a WeightedSlice with its share of the total.
type Slice struct {
	WeightedSlice
	Percentage float64 // 100 * Weight / total, unrounded
	Label      string  // "<name> (<weight>, <percentage>%)"
}

// Compute derives percentages and labels for slices, preserving order.
//
// It fails with EMPTY_INPUT when there are no slices or the weights sum to
// zero, and with INVALID_INPUT when a weight is negative or not finite.
// Zero-weight slices are kept; they become empty wedges.
func Compute(in []WeightedSlice) ([]Slice, error) {
	if len(in) == 0 {
		return nil, perrors.New(perrors.ErrCodeEmptyInput, "no slices to draw")
	}

	var total float64
	for _, s := range in {
		if math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return nil, perrors.New(perrors.ErrCodeInvalidInput, "slice %q has a non-finite weight", s.Name)
		}
		if s.Weight < 0 {
			return nil, perrors.New(perrors.ErrCodeInvalidInput, "slice %q has negative weight %v", s.Name, s.Weight)
		}
		total += s.Weight
	}
	if total == 0 {
		return nil, perrors.New(perrors.ErrCodeEmptyInput, "slice weights sum to zero")
	}

	out := make([]Slice, len(in))
	for i, s := range in {
		pct := 100 * s.Weight / total
		out[i] = Slice{
			WeightedSlice: s,
			Percentage:    pct,
			Label:         FormatLabel(s.Name, s.Weight, pct),
		}
	}
	return out, nil
}

// FormatLabel renders a slice label. The weight is printed as given and the
// percentage rounded to a whole number:
//
//	FormatLabel("Spellcasters", 12, 60.0) == "Spellcasters (12, 60%)"
func FormatLabel(name string, weight, pct float64) string {
	return fmt.Sprintf("%s (%s, %.0f%%)", name, strconv.FormatFloat(weight, 'f', -1, 64), pct)
}

// Total returns the sum of the slice weights.
func Total(slices []Slice) float64 {
	var total float64
	for _, s := range slices {
		total += s.Weight
	}
	return total
}
