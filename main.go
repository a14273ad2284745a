package main

import "github.com/2002hackerr/movie-player/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
