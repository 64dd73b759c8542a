package main

import "github.com/valpere/romawi/cmd"

func main() {
	cmd.Execute()
}
