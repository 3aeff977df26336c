package main

import "github.com/oshokin/rover-guard/cmd/rover-teleop/cmd"

func main() {
	cmd.Execute()
}
