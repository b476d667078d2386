package main

import "example.com/admin-console/internal/cli"

func main() {
	cli.Execute()
}
