// main.go
//
// Entry point; CLI handling lives in the Cobra commands under cmd/

package main

import (
	"github.com/sloth-sim/sloth/cmd"
)

func main() {
	cmd.Execute()
}
