// Package cmdtest creates a testable interface to propenc main
//
// The interface is used to perform end-to-end test of
// commands, flags, environment variables etc.
package cmdtest

// The rest of this file is a 1:1 copy from propenc.go

import (
	"github.com/propkit/propenc/cmd"
	_ "github.com/propkit/propenc/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
