package main

import "gudang/cli"

func main() {
	cli.Execute()
}
