package main

import "logsink/internal/commands"

func main() {
	commands.Execute()
}
