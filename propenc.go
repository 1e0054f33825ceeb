// Convert text to and from the properties file encoding
package main

import (
	"github.com/propkit/propenc/cmd"
	_ "github.com/propkit/propenc/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
