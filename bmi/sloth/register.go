// register.go wires the SLoTH constructor into the bmi component registry.
// This init() runs when any package imports bmi/sloth; hosts then obtain
// instances with bmi.New(sloth.ComponentID).
package sloth

import "github.com/sloth-sim/sloth/bmi"

// ComponentID is the name SLoTH is registered under.
const ComponentID = "sloth"

func init() {
	bmi.Register(ComponentID, func() bmi.Model { return New() })
}
