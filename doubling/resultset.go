package doubling

// ResultSet maps each well label to its ordered doubling time estimates,
// one per window position, preserving the order in which wells were added.
// It is handed read-only to the report writer.
type ResultSet struct {
	labels []string
	rates  map[string][]float64
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{
		rates: make(map[string][]float64),
	}
}

// Add records the estimates for a well. Re-adding a label replaces its
// estimates without disturbing its position.
func (rs *ResultSet) Add(label string, estimates []float64) {
	if _, exists := rs.rates[label]; !exists {
		rs.labels = append(rs.labels, label)
	}
	rs.rates[label] = estimates
}

// Estimates returns the estimates for a well, if present.
func (rs *ResultSet) Estimates(label string) ([]float64, bool) {
	est, ok := rs.rates[label]

	return est, ok
}

// Labels returns the well labels in insertion order.
func (rs *ResultSet) Labels() []string {
	return rs.labels
}

// Len returns the number of wells with estimates.
func (rs *ResultSet) Len() int {
	return len(rs.labels)
}
