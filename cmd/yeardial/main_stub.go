//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of yeardial requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/yeardial` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless PNG render use `go run ./cmd/dialsnap`.")
	os.Exit(2)
}
