package main

import (
	"nixup/internal/cli"
)

func main() {
	cli.Execute()
}
