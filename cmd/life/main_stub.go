//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of sparse-life requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life`.")
	fmt.Fprintln(os.Stderr, "Without a window: ./cmd/life-term draws in the terminal, ./cmd/life-run runs headless and prints population stats.")
	os.Exit(2)
}
