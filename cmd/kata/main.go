package main

import "github.com/aalvaropc/kata/internal/cli"

func main() {
	cli.Execute()
}
