package main

import "github.com/papapumpkin/conv/cmd"

func main() {
	cmd.Execute()
}
