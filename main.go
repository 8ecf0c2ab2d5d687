//go:build !mcp && !http

package main

import "quagmire_solve/cmd"

func main() {
	cmd.Execute()
}
