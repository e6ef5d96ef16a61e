package main

import "qcalc/internal/cli"

func main() {
	cli.Execute()
}
