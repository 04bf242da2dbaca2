package main

import "github.com/holmes89/qaa/cmd"

func main() {
	cmd.Execute()
}
