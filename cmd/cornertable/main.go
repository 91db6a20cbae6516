// Command cornertable generates and inspects the corner heuristic table.
package main

import (
	"github.com/andrewbrown/cornertable/internal/cli"
)

func main() {
	cli.Execute()
}
