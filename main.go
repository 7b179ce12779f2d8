package main

import "os-scheduler/cmd"

func main() {
	cmd.Execute()
}
