package main

import "github.com/theirongolddev/savealloc/cmd"

func main() {
	cmd.Execute()
}
