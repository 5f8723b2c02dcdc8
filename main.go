package main

import "github.com/percal/percal/cmd"

func main() {
	cmd.Execute()
}
