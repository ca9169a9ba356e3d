package domain

// AvailabilityInfo is either known (stock, warehouse, delivery) or unknown
// with no fields at all.
type AvailabilityInfo struct {
	StockKnown       bool   `json:"stockKnown"`
	StockLevel       *int   `json:"stockLevel,omitempty"`
	WarehouseCode    string `json:"warehouseCode,omitempty"`
	ExpectedDelivery string `json:"expectedDelivery,omitempty"`
}

// AvailabilityKnown builds the known shape.
func AvailabilityKnown(stockLevel int, warehouseCode, expectedDelivery string) AvailabilityInfo {
	return AvailabilityInfo{
		StockKnown:       true,
		StockLevel:       &stockLevel,
		WarehouseCode:    warehouseCode,
		ExpectedDelivery: expectedDelivery,
	}
}

// AvailabilityUnknown builds the fallback shape.
func AvailabilityUnknown() AvailabilityInfo {
	return AvailabilityInfo{}
}
