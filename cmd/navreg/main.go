// Command navreg is a demo harness around the navreg region-building
// pipeline.
package main

import "github.com/arl/navreg/cmd/navreg/cmd"

func main() {
	cmd.Execute()
}
