package main

import "github.com/satishgoda/OpenAssetIO/internal/cli"

func main() {
	cli.Execute()
}
