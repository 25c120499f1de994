package main

import "github.com/alexiusacademia/gorcv/cmd"

func main() {
	cmd.Execute()
}
