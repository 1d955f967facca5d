package main

import (
	"github.com/Sena-ops/reportguard/cmd"
)

func main() {
	cmd.Execute()
}
