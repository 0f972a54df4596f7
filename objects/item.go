package objects

import "reflect"

// Item is one catalog record. IDs are numeric, assigned at creation and
// stable for the item's lifetime.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

func (i Item) GetID() int {
	return i.ID
}

func (i Item) IsNil() bool {
	return reflect.ValueOf(i).IsZero()
}

// ItemCandidate is the creation payload. Price is a pointer so a missing
// price can be told apart from an explicit zero.
type ItemCandidate struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
}

// Stats is the derived aggregate over the full collection. It is never
// persisted.
type Stats struct {
	Count        int     `json:"count"`
	AveragePrice float64 `json:"averagePrice"`
}
