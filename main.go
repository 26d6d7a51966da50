package main

import (
	"github.com/metageni/Sequence-Cleaner/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
