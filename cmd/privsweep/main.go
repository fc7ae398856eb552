package main

import "github.com/privsweep/privsweep/cmd/privsweep/commands"

func main() {
	commands.Execute()
}
