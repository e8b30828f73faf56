package main

import "github.com/merryyellow/route2roslyn/cmd"

func main() {
	cmd.Execute()
}
