// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// ListQuery carries the sort and pagination parameters shared by every
// paginated collection endpoint. Zero values select the per-entity
// defaults.
type ListQuery struct {
	SortKey  string
	Reverse  bool
	Page     int
	PageSize int
}
