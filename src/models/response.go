package models

// Response is a projected API response: the pagination block (nil for
// unpaged lookups) and the requested resource's records reduced to the
// schema columns. Multi-page fetches return the last page's meta with the
// table holding every page's rows in page order.
type Response struct {
	Meta  *Meta
	Table *Table
}
