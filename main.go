package main

import "othctl/cmd"

func main() {
	cmd.Execute()
}
