package storage

import (
	"fmt"
	"os"
)

// Layout holds the three folders the service reads and writes.
type Layout struct {
	Uploads   string
	Processed string
	Templates string
}

// PrepareLayout creates every folder of l that does not exist yet.
func PrepareLayout(l Layout) (Layout, error) {
	for _, dir := range []string{l.Uploads, l.Processed, l.Templates} {
		if dir == "" {
			return Layout{}, fmt.Errorf("storage layout: empty folder name in %+v", l)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Layout{}, fmt.Errorf("storage layout: create %s: %w", dir, err)
		}
	}
	return l, nil
}
