package main

import (
	"github.com/vietddude/productinfo/internal/cli"
)

func main() {
	cli.Execute()
}
