package main

import "github.com/mateusmacedo/go-airline/internal/cli"

func main() {
	cli.Execute()
}
