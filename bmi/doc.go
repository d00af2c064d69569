// Package bmi defines the Basic Model Interface contract used to couple
// interchangeable model components into a host framework.
//
// # Reading Guide
//
// Start with these files:
//   - bmi.go: the Model interface (control, info, variable, time and grid methods)
//   - types.go: the closed catalog of element types and their byte widths
//   - errors.go: the error taxonomy every component reports through
//   - values.go: typed views for encoding values into the untyped byte buffers
//
// # Architecture
//
// The bmi package defines interfaces and shared types; components live in
// sub-packages:
//   - bmi/sloth/: the runtime-typed variable store (SLoTH)
//   - bmi/trace/: call trace recording
//
// Components register a factory via init() (see registry.go), replacing the
// extern-level create/destroy entry points of the C++ binding. Hosts obtain
// instances with New(name).
//
// # Buffers
//
// Variable values cross the interface as []byte in native byte order. The
// element type and count are reported by GetVarType and GetVarNbytes; use
// Encode and Decode to convert between typed slices and bytes.
package bmi
