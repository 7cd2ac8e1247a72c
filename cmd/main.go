package main

import cmd "github.com/kerbaras/movies/cmd/movies"

func main() {
	cmd.Execute()
}
