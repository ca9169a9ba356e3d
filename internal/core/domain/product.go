package domain

// ProductDetails holds the display attributes of a product in one market.
// Produced only by a successful catalog call; every other facet of an
// aggregate is optional, this one is not.
type ProductDetails struct {
	ProductID   string            `json:"productId"`
	Market      string            `json:"market"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
	ImageURLs   []string          `json:"imageUrls"`
}
