package main

import "github.com/forgo/camp/cmd/campctl/commands"

func main() {
	commands.Execute()
}
