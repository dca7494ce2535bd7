package booking

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultLocationPrice is charged when the service address matches no
// configured region.
const DefaultLocationPrice = 1000

// EquipmentItem is one catalog line selected on an equipment-priced order.
type EquipmentItem struct {
	ID       uuid.UUID
	Name     string
	Price    int
	Quantity int
}

// EquipmentTotal sums price*quantity over the selected items.
func EquipmentTotal(items []EquipmentItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// UnitPricing is the tier row for unit-count priced services.
type UnitPricing struct {
	ID             uuid.UUID
	BasePrice      int
	AdditionalUnit int
}

// Total computes base + (units-1) * additional for unitCount >= 1.
func (p UnitPricing) Total(unitCount int) int {
	if unitCount < 1 {
		unitCount = 1
	}
	return p.BasePrice + (unitCount-1)*p.AdditionalUnit
}

// LocationPricing maps an address keyword region to a flat price.
type LocationPricing struct {
	ID     uuid.UUID
	Region string
	Price  int
}

// regionKeywords maps address substrings to billing regions.
var regionKeywords = []struct {
	keyword string
	region  string
}{
	{"台北", "雙北"},
	{"臺北", "雙北"},
	{"新北", "雙北"},
	{"桃園", "桃園"},
	{"基隆", "基隆"},
	{"新竹", "新竹"},
}

// DetermineRegion resolves the billing region from a free-form address.
// Returns "" when no keyword matches; callers fall back to
// DefaultLocationPrice.
func DetermineRegion(address string) string {
	for _, rk := range regionKeywords {
		if strings.Contains(address, rk.keyword) {
			return rk.region
		}
	}
	return ""
}

// LocationPrice resolves the flat price for an address against the configured
// regions.
func LocationPrice(address string, regions []LocationPricing) int {
	region := DetermineRegion(address)
	if region != "" {
		for _, r := range regions {
			if r.Region == region {
				return r.Price
			}
		}
	}
	return DefaultLocationPrice
}
