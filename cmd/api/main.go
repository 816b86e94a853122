package main

import "github.com/BruksfildServices01/taller-admin/cmd/api/commands"

func main() {
	commands.Execute()
}
