package main

import "datadiff/cmd"

func main() {
	cmd.Execute()
}
