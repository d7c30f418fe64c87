package query

// Query describes one junction to match: the host element, the element it
// meets, and the exposure condition. Every field may be empty.
type Query struct {
	host     string
	adjacent string
	exposure string
}

// New creates a query. No validation is applied; an empty field simply
// contributes no tokens.
func New(host, adjacent, exposure string) Query {
	return Query{host: host, adjacent: adjacent, exposure: exposure}
}

// Host returns the host element text.
func (q Query) Host() string { return q.host }

// Adjacent returns the adjacent element text.
func (q Query) Adjacent() string { return q.adjacent }

// Exposure returns the exposure condition text.
func (q Query) Exposure() string { return q.exposure }
