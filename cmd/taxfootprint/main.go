package main

import "github.com/taxfootprint/footprint-calculator/internal/cli"

func main() {
	cli.Execute()
}
