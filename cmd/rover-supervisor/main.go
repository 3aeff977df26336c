package main

import "github.com/oshokin/rover-guard/cmd/rover-supervisor/cmd"

func main() {
	cmd.Execute()
}
