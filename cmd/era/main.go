package main

import "eratracker/cmd/era/root"

func main() {
	root.Execute()
}
