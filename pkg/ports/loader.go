package ports

// GraphLoader defines how the engine retrieves node definitions.
// This allows the storage layer (Loam, YAML, Memory) to be decoupled.
type GraphLoader interface {
	// GetNode retrieves the raw definition of a node by ID.
	// It returns JSON bytes (which the compiler will parse) or an error.
	GetNode(id string) ([]byte, error)

	// ListNodes returns the IDs of every node available in the graph.
	// The compiler uses it to build the closed-world node table.
	ListNodes() ([]string, error)
}
