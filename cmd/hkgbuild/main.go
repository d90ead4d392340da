package main

import "hkgbuild/internal/cli"

func main() {
	cli.Execute()
}
