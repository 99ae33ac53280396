package main

import "github.com/averille/explain/cmd"

func main() {
	cmd.Execute()
}
