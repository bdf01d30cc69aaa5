package main

import "github.com/lshkit/lsh/cmd/lshsum/cmd"

func main() {
	cmd.Execute()
}
