// Command craftgrid resolves shaped crafting recipes from YAML files.
package main

import "github.com/katalvlaran/craftgrid/cli"

func main() {
	cli.Execute()
}
