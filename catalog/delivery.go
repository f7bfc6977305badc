package catalog

// DeliveryTier is one anchor point on the delivery pricing curve. Longer wait
// means the order ships closer to the manufacturer, so the price drops.
type DeliveryTier struct {
	Days        int     `json:"days"`
	Label       string  `json:"label"`
	Discount    int     `json:"discount"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// DeliveryTiers is strictly increasing in Days and in Discount.
// Invariant: Multiplier == 1 - Discount/100.
var DeliveryTiers = []DeliveryTier{
	{Days: 2, Label: "Express Delivery", Discount: 0, Multiplier: 1.00, Description: "Ready stock, shipped immediately"},
	{Days: 7, Label: "Standard — Direct from Supplier", Discount: 15, Multiplier: 0.85, Description: "Ships direct from supplier warehouse, no middlemen"},
	{Days: 15, Label: "Made to Order", Discount: 20, Multiplier: 0.80, Description: "Freshly manufactured for your order"},
	{Days: 30, Label: "Factory Direct, Zero Waste", Discount: 30, Multiplier: 0.70, Description: "Manufactured on demand, zero inventory waste"},
	{Days: 45, Label: "Manufacturer Direct, Maximum Savings", Discount: 50, Multiplier: 0.50, Description: "Direct from factory floor, maximum savings passed to you"},
}

// TierForDays returns the highest tier whose Days does not exceed days. Used
// where a single label and description must be shown rather than a blended
// price.
func TierForDays(days int) DeliveryTier {
	for i := len(DeliveryTiers) - 1; i >= 0; i-- {
		if days >= DeliveryTiers[i].Days {
			return DeliveryTiers[i]
		}
	}
	return DeliveryTiers[0]
}

// MultiplierForDays returns a smooth interpolated price multiplier for any day
// value. Inputs outside the table clamp to the first or last tier rather than
// extrapolate.
func MultiplierForDays(days float64) float64 {
	first := DeliveryTiers[0]
	last := DeliveryTiers[len(DeliveryTiers)-1]
	if days <= float64(first.Days) {
		return first.Multiplier
	}
	if days >= float64(last.Days) {
		return last.Multiplier
	}
	for i := 0; i < len(DeliveryTiers)-1; i++ {
		lo := DeliveryTiers[i]
		hi := DeliveryTiers[i+1]
		if days >= float64(lo.Days) && days <= float64(hi.Days) {
			t := (days - float64(lo.Days)) / float64(hi.Days-lo.Days)
			return lo.Multiplier + t*(hi.Multiplier-lo.Multiplier)
		}
	}
	return 1
}
