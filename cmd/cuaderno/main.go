package main

import "cuaderno/cmd/cuaderno/cmd"

func main() {
	cmd.Execute()
}
