package main

import "unitlog/cmd"

func main() {
	cmd.Execute()
}
