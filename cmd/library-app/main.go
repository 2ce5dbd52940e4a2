package main

import "library-app-go/cmd/library-app/commands"

func main() {
	commands.Execute()
}
