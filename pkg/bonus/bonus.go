// Package bonus resolves government housing subsidies that reduce the
// effective principal of a mortgage before scheduling.
package bonus

import "fmt"

// Eligibility reports why a BBP lookup did or did not produce an amount.
type Eligibility string

const (
	Eligible Eligibility = "eligible"
	TooLow   Eligibility = "too_low"
	TooHigh  Eligibility = "too_high"
	NoPrice  Eligibility = "no_price"
)

// Band maps an inclusive property price range to its subsidy amounts. The
// sustainable column applies to certified sustainable housing.
type Band struct {
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	Standard    float64 `json:"standard"`
	Sustainable float64 `json:"sustainable"`
}

// bbpBands is the Bono del Buen Pagador table: five ordered, non-overlapping
// price bands. Constant reference data, never mutated at runtime.
var bbpBands = []Band{
	{MinPrice: 68800, MaxPrice: 98100, Standard: 27400, Sustainable: 33700},
	{MinPrice: 98100.01, MaxPrice: 143500, Standard: 22900, Sustainable: 29200},
	{MinPrice: 143500.01, MaxPrice: 239100, Standard: 20100, Sustainable: 26400},
	{MinPrice: 239100.01, MaxPrice: 343900, Standard: 10800, Sustainable: 17100},
	{MinPrice: 343900.01, MaxPrice: 488800, Standard: 7300, Sustainable: 13600},
}

// BBPBands returns a copy of the BBP reference table.
func BBPBands() []Band {
	bands := make([]Band, len(bbpBands))
	copy(bands, bbpBands)
	return bands
}

// CalculateBBP looks up the Bono del Buen Pagador for a property price. No
// interpolation is performed between bands; prices outside the program yield
// zero with a distinct eligibility status.
func CalculateBBP(propertyPrice float64, sustainable bool) (float64, Eligibility) {
	if propertyPrice <= 0 {
		return 0, NoPrice
	}
	if propertyPrice < bbpBands[0].MinPrice {
		return 0, TooLow
	}
	if propertyPrice > bbpBands[len(bbpBands)-1].MaxPrice {
		return 0, TooHigh
	}
	for _, band := range bbpBands {
		if propertyPrice >= band.MinPrice && propertyPrice <= band.MaxPrice {
			if sustainable {
				return band.Sustainable, Eligible
			}
			return band.Standard, Eligible
		}
	}
	// Unreachable while the bands stay contiguous.
	return 0, TooHigh
}

// Modality enumerates the Bono Familiar Habitacional program variants.
type Modality string

const (
	ModalityPurchase     Modality = "purchase"
	ModalityConstruction Modality = "construction"
	ModalityImprovement  Modality = "improvement"
)

// bfhAmounts is the fixed BFH lookup; no price dependency.
var bfhAmounts = map[Modality]float64{
	ModalityPurchase:     43313,
	ModalityConstruction: 32630,
	ModalityImprovement:  9965,
}

// CalculateBFH looks up the Bono Familiar Habitacional for a modality.
func CalculateBFH(modality Modality) (float64, error) {
	amount, ok := bfhAmounts[modality]
	if !ok {
		return 0, fmt.Errorf("unrecognized BFH modality %q", modality)
	}
	return amount, nil
}
