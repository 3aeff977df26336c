package main

import "github.com/oshokin/rover-guard/cmd/rover-maneuver/cmd"

func main() {
	cmd.Execute()
}
