// Command kicadio reads, checks and writes KiCad design files.
package main

import "github.com/edatools/kicadio/internal/cli"

func main() {
	cli.Execute()
}
