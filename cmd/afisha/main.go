package main

import "github.com/kulevich/minsk-afisha/internal/cli"

func main() {
	cli.Execute()
}
