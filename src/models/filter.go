package models

// Filter is the set of query parameters sent to narrow a lookup.
type Filter map[string]string

// Clone returns an independent copy so callers can reuse a base filter across
// page requests.
func (f Filter) Clone() Filter {
	out := make(Filter, len(f))
	for key, value := range f {
		out[key] = value
	}

	return out
}
