// Package all imports all the commands
package all

import (
	// Active commands
	_ "github.com/propkit/propenc/cmd/decode"
	_ "github.com/propkit/propenc/cmd/encode"
	_ "github.com/propkit/propenc/cmd/escapekey"
	_ "github.com/propkit/propenc/cmd/version"
)
