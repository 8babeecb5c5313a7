package main

import (
	"github.com/hwright/contactform/cmd/contactform/cmd"
)

func main() {
	cmd.Execute()
}
