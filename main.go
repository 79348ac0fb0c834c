package main

import "github.com/notargets/dgwave/cmd"

func main() {
	cmd.Execute()
}
