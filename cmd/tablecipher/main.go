package main

import "github.com/cahanap/cj-s-table-cipher/internal/cli"

func main() {
	cli.Execute()
}
