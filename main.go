package main

import (
	"github.com/mj1618/xraise/cmd"
	_ "github.com/mj1618/xraise/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
