package models

// PagedResponse — страница коллекции.
type PagedResponse[T any] struct {
	Size       uint32 `json:"size"`
	Limit      uint32 `json:"limit"`
	IsLastPage bool   `json:"isLastPage"`
	Values     []T    `json:"values"`
	Start      uint32 `json:"start"`
	// NextPageStart отсутствует на последней странице.
	NextPageStart *uint32 `json:"nextPageStart,omitempty"`
}
