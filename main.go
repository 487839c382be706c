package main

import "market-manager/cmd"

func main() {
	cmd.Execute()
}
