package models

// DefaultPageSize is the compiled-in page size used when a listing request
// does not carry a limit.
const DefaultPageSize = 10

// PaginationData is the wire shape of one listing page. Total counts every
// match before slicing, so it only moves with the search text, never with
// page or limit alone.
type PaginationData[Data any] struct {
	Items []Data `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
