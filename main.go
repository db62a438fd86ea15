package main

import "github.com/fiffeek/setdisplayresolution/cmd"

func main() {
	cmd.Execute()
}
