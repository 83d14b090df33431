package render

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/browser"
)

// Opener shows a rendered file to the user.
type Opener func(ctx context.Context, path string) error

var openFile = browser.OpenFile

func init() {
	// stdout carries command results
	browser.Stdout = os.Stderr
}

// Open hands path to the platform's default viewer (xdg-open, open or
// rundll32). A context that is already done opens nothing.
func Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render: open %s: %w", path, err)
	}
	if err := openFile(path); err != nil {
		return fmt.Errorf("render: open %s: %w", path, err)
	}

	return nil
}
