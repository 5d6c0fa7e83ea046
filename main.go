package main

import "github.com/clems4ever/ccorpus/cmd"

func main() {
	cmd.Execute()
}
