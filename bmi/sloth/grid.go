package sloth

import "github.com/sloth-sim/sloth/bmi"

// SLoTH variables live on no grid. Every grid method is part of the BMI
// contract and fails with bmi.ErrNotImplemented.

func notImplemented(op, name string) error {
	return &bmi.VarError{Op: op, Name: name, Wrapped: bmi.ErrNotImplemented}
}

func (m *Model) GetVarGrid(name string) (int, error) {
	return 0, notImplemented("GetVarGrid", name)
}

func (m *Model) GetGridRank(grid int) (int, error) { return 0, notImplemented("GetGridRank", "") }
func (m *Model) GetGridSize(grid int) (int, error) { return 0, notImplemented("GetGridSize", "") }
func (m *Model) GetGridType(grid int) (string, error) {
	return "", notImplemented("GetGridType", "")
}

func (m *Model) GetGridShape(grid int, shape []int) error {
	return notImplemented("GetGridShape", "")
}
func (m *Model) GetGridSpacing(grid int, spacing []float64) error {
	return notImplemented("GetGridSpacing", "")
}
func (m *Model) GetGridOrigin(grid int, origin []float64) error {
	return notImplemented("GetGridOrigin", "")
}

func (m *Model) GetGridX(grid int, x []float64) error { return notImplemented("GetGridX", "") }
func (m *Model) GetGridY(grid int, y []float64) error { return notImplemented("GetGridY", "") }
func (m *Model) GetGridZ(grid int, z []float64) error { return notImplemented("GetGridZ", "") }

func (m *Model) GetGridNodeCount(grid int) (int, error) { return 0, notImplemented("GetGridNodeCount", "") }
func (m *Model) GetGridEdgeCount(grid int) (int, error) { return 0, notImplemented("GetGridEdgeCount", "") }
func (m *Model) GetGridFaceCount(grid int) (int, error) { return 0, notImplemented("GetGridFaceCount", "") }

func (m *Model) GetGridEdgeNodes(grid int, edgeNodes []int) error {
	return notImplemented("GetGridEdgeNodes", "")
}
func (m *Model) GetGridFaceEdges(grid int, faceEdges []int) error {
	return notImplemented("GetGridFaceEdges", "")
}
func (m *Model) GetGridFaceNodes(grid int, faceNodes []int) error {
	return notImplemented("GetGridFaceNodes", "")
}
func (m *Model) GetGridNodesPerFace(grid int, nodesPerFace []int) error {
	return notImplemented("GetGridNodesPerFace", "")
}
