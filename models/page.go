package models

// Page is the common envelope returned by every paginated list operation.
//
// Invariants: TotalPages == ceil(Total/Limit) (0 when Total is 0);
// HasNext iff Page < TotalPages; HasPrev iff Page > 1 and TotalPages > 0.
// A Page whose number is past TotalPages carries empty Data but still
// reports accurate totals — callers must treat it as "no content at this
// page", not as an error.
type Page[T any] struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
	Data       []T   `json:"data"`
}
