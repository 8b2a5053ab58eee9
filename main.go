package main

import "github.com/nikogura/readme-forge/cmd"

func main() {
	cmd.Execute()
}
