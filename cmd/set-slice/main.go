package main

import (
	"context"
	"os"

	"github.com/egandro/set-slice/pkg/privilege"
	"github.com/egandro/set-slice/pkg/scheduler"
)

func main() {
	code := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr,
		scheduler.New(), &privilege.ProcessCapabilities{})
	os.Exit(code)
}
