package sales

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ParsePercent reads a partner percentage the way the sheet stores it: "40",
// "40%", " 35 % ". Absent or unparsable values fall back to zero; values
// outside 0-100 pass through untouched.
func ParsePercent(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmount reads a money cell, tolerating a leading currency sign and
// surrounding whitespace. Unparsable values fall back to zero.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeShares splits a sale price between partner and owner: the partner
// recovers the unit cost plus their percentage of the sale price, the owner
// keeps the remainder. No rounding happens here; callers format to two
// decimals only when persisting.
func ComputeShares(unitCost, partnerPercent, salePrice decimal.Decimal) (partnerShare, ownerShare decimal.Decimal) {
	partnerShare = unitCost.Add(salePrice.Mul(partnerPercent).Div(oneHundred))
	ownerShare = salePrice.Sub(partnerShare)
	return partnerShare, ownerShare
}

// FormatPercent normalizes a percentage for the Ventas row: "40" and "40%"
// both persist as "40%".
func FormatPercent(raw string) string {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if cleaned == "" {
		cleaned = "0"
	}
	return cleaned + "%"
}
