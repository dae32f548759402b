package indicator

// Indicator consumes one sample per tick and exposes a derived value once
// enough history has accumulated.
type Indicator interface {
	Push(sample float64)
	Value() (float64, bool)
}
