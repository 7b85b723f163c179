package main

import "github.com/katalvlaran/mazerunner/internal/cli"

func main() {
	cli.Execute()
}
