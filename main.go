package main

import "github.com/kiasaki/solo-lisp/cmd"

func main() {
	cmd.Execute()
}
