package main

import "clearahead/cmd"

func main() {
	cmd.Execute()
}
