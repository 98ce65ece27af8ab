package main

import (
	"github.com/zxfonline/unirand/cmd"
)

func main() {
	cmd.Execute()
}
