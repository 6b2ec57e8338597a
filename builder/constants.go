// Package builder defines shared constants used by graph builders, ensuring
// consistent minima and error prefixes across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomEdges is the canonical name for the RandomEdges constructor.
	MethodRandomEdges = "RandomEdges"
)

//-----------------------------------------------------------------------------
// Minimum sizes and probability bounds
//-----------------------------------------------------------------------------

const (
	// MinCycleNodes is the smallest simple cycle.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinStarLeaves is the smallest star.
	MinStarLeaves = 1
	// MinWheelRim is the smallest wheel rim (a triangle).
	MinWheelRim = 3
	// MinCompleteNodes is the smallest complete graph.
	MinCompleteNodes = 1
	// MinGridDim is the smallest grid side.
	MinGridDim = 1
	// MinProbability is the inclusive lower bound of RandomSparse(p).
	MinProbability = 0.0
	// MaxProbability is the inclusive upper bound of RandomSparse(p).
	MaxProbability = 1.0
)
