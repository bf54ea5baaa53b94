package main

import "github.com/kpavlenko/go-todo/cmd"

func main() {
	cmd.Execute()
}
