package main

import "github.com/twanvl/ice-sliding-puzzle/cmd"

func main() {
	cmd.Execute()
}
