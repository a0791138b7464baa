package main

import "github.com/moyu-x/filehasher/cmd"

func main() {
	cmd.Execute()
}
