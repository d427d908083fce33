// Command conduit-solver is the CLI entry point: it delegates entirely
// to the cobra command tree in cmd.
package main

import "github.com/weftloop/conduit-solver/cmd"

func main() {
	cmd.Execute()
}
