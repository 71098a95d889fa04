package main

import "github.com/example/roomsched/cmd"

func main() {
	cmd.Execute()
}
