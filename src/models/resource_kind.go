package models

// ResourceKind is one of the top-level entity categories returned by the
// marketplace API. Stats never appears as a top-level paged resource, only
// nested inside event records.
type ResourceKind string

const (
	ResourceEvents     ResourceKind = "events"
	ResourcePerformers ResourceKind = "performers"
	ResourceVenues     ResourceKind = "venues"
	ResourceStats      ResourceKind = "stats"
)

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceEvents, ResourcePerformers, ResourceVenues, ResourceStats:
		return true
	default:
		return false
	}
}
