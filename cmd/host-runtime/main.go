package main

import "github.com/petrarca/host-runtime/internal/cmd"

func main() {
	cmd.Execute()
}
