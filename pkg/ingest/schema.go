package ingest

import (
	"encoding/json"
)

// ClassifierResponse is the classification service's reply. Two schema
// generations exist in production; this shape decodes both.
type ClassifierResponse struct {
	Items []ClassifierItem `json:"items"`
}

type ClassifierItem struct {
	Name         string             `json:"name"`
	Quantity     ClassifierQuantity `json:"quantity"`
	PurchaseDate string             `json:"purchase_date"`
	Expiry       ClassifierExpiry   `json:"expiry"`

	// First generation names the recommendation recommended_storage with a
	// pantry/refrigerator/freezer vocabulary; the second uses
	// default_storage with outside/fridge/freezer.
	RecommendedStorage string `json:"recommended_storage"`
	DefaultStorage     string `json:"default_storage"`

	// Numeric fields arrive as numbers or numeric strings depending on the
	// upstream version, hence RawMessage.
	PricePerUnit json.RawMessage `json:"price_per_unit"`
	TotalPrice   json.RawMessage `json:"total_price"`

	Confidence json.RawMessage `json:"confidence"`
	Category   string          `json:"category"`
}

type ClassifierQuantity struct {
	Count         json.RawMessage `json:"count"`
	AmountPerUnit json.RawMessage `json:"amount_per_unit"`
	Unit          string          `json:"unit"`
}

type ClassifierExpiry struct {
	Pantry       string `json:"pantry"`
	Refrigerator string `json:"refrigerator"`
	Fridge       string `json:"fridge"`
	Outside      string `json:"outside"`
	Freezer      string `json:"freezer"`
}
