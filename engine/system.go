package engine

// System is one phase of the per-tick pipeline
type System interface {
	Name() string
	// Priority orders execution, lower values run first
	Priority() int
	// Update runs one tick against the world it was built with
	Update()
}
