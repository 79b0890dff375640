package main

import "github.com/ppartarr/melotube/cmd"

func main() {
	cmd.Execute()
}
