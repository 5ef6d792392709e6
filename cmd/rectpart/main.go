package main

import "github.com/arl/go-rectpart/cmd/rectpart/cmd"

func main() {
	cmd.Execute()
}
