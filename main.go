package main

import "github.com/scribe-md/scribe/cmd"

func main() {
	cmd.Execute()
}
