package main

import "timecards/cmd"

func main() {
	cmd.Execute()
}
