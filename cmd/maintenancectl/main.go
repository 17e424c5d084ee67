// Package main запускает консольный клиент сервиса заявок на обслуживание
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usage = `usage: maintenancectl [--server URL] [--verbose] <command> [args]

commands:
  requests [--status S] [--type T] [--equipment ID] [--page N]
  show <request-id>
  status <request-id> <NEW|IN_PROGRESS|REPAIRED|SCRAP> [--yes]
  assign <request-id> <user-id|none>
  calendar [--from DATE] [--to DATE]
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}
