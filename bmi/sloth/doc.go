// Package sloth implements the Simple Logical Tautology Handler (SLoTH), a
// BMI component that stores whatever it is given and hands it back.
//
// Callers never declare variables. A variable springs into existence the
// first time it is set, with its shape and type encoded in its name:
//
//	name
//	name(count)
//	name(count,type)
//	name(count,type,units,location)
//	name(count,type,units,location,alias)
//
// Fields are positional and optional; an empty slot selects the default
// (count 1, type double, units "1", location "node", no alias). Metadata is
// honored only when a canonical name is first seen; later writes to the same
// name are pure value writes.
//
// The package is built from four parts:
//   - [ParseName]: decodes the name grammar into a canonical name and [Meta]
//   - [AliasIndex]: maps input-side aliases to their canonical variables
//   - [Store]: owns one byte buffer per canonical variable
//   - [Model]: the bmi.Model facade composing the three
//
// # Thread Safety
//
// Model instances are NOT thread-safe and hold no locks. The host owns a
// single instance and must serialize every call.
package sloth
