package main

import "github.com/okkura/contribsum/cmd"

func main() {
	cmd.Execute()
}
