package main

import "github.com/andrescamacho/galaxy-routing-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
