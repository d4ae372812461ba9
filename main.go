package main

import (
	"os"

	"github.com/interior-site/interior-site/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
