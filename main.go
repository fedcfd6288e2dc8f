// Package main points at the real entry points under cmd/.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Please use one of the following commands:")
	fmt.Println("  go run ./cmd/pocketh      - Ethereum toolbox and selector collision search")
	fmt.Println("  go run ./cmd/adgen        - Print one random account")
	os.Exit(0)
}
