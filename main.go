package main

import "github.com/auxillium/auxillium_backend/cmd"

func main() {
	cmd.Execute()
}
