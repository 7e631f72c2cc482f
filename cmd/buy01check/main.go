// Command buy01check runs the storefront's form and upload checks from the
// command line and prints the message a user would see.
//
//	buy01check price -max 100 12.345
//	buy01check price -- -5
//	buy01check -lang sv file -preset avatar -name me.pdf -size 3145728 -type application/pdf
//	buy01check http -status 404 -server-message "Product X gone"
//	buy01check -json client "Network request failed"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
