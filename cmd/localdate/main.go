package main

import "github.com/wenzisay/localdate/internal/cli"

func main() {
	cli.Execute()
}
