package bmi

// Model is the BMI method set a component exposes to its host.
// Method names follow the BMI standard rather than Go getter conventions so
// that hosts and component authors can map them one-to-one.
//
// Implementations are not required to be safe for concurrent use: the host
// owns one instance and serializes every call.
type Model interface {
	Control
	Info
	Variables
	Clock
	Grid
}

// Control holds the model lifecycle methods.
type Control interface {
	Initialize(configFile string) error
	Update() error
	UpdateUntil(time float64) error
	Finalize() error
}

// Info describes the component and its exchange items.
type Info interface {
	GetComponentName() string
	GetInputItemCount() int
	GetOutputItemCount() int
	GetInputVarNames() []string
	GetOutputVarNames() []string
}

// Variables exposes variable metadata and values.
type Variables interface {
	GetVarGrid(name string) (int, error)
	GetVarType(name string) (string, error)
	GetVarUnits(name string) (string, error)
	GetVarItemsize(name string) (int, error)
	GetVarNbytes(name string) (int, error)
	GetVarLocation(name string) (string, error)

	GetValue(name string, dest []byte) error
	GetValuePtr(name string) ([]byte, error)
	GetValueAtIndices(name string, dest []byte, inds []int, count int) error

	SetValue(name string, src []byte) error
	SetValueAtIndices(name string, inds []int, count int, src []byte) error
}

// Clock reports model time.
type Clock interface {
	GetCurrentTime() float64
	GetStartTime() float64
	GetEndTime() float64
	GetTimeUnits() string
	GetTimeStep() float64
}

// Grid holds the grid information methods.
type Grid interface {
	GetGridRank(grid int) (int, error)
	GetGridSize(grid int) (int, error)
	GetGridType(grid int) (string, error)

	GetGridShape(grid int, shape []int) error
	GetGridSpacing(grid int, spacing []float64) error
	GetGridOrigin(grid int, origin []float64) error

	GetGridX(grid int, x []float64) error
	GetGridY(grid int, y []float64) error
	GetGridZ(grid int, z []float64) error

	GetGridNodeCount(grid int) (int, error)
	GetGridEdgeCount(grid int) (int, error)
	GetGridFaceCount(grid int) (int, error)

	GetGridEdgeNodes(grid int, edgeNodes []int) error
	GetGridFaceEdges(grid int, faceEdges []int) error
	GetGridFaceNodes(grid int, faceNodes []int) error
	GetGridNodesPerFace(grid int, nodesPerFace []int) error
}
