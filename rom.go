// rom.go - loads the 16KiB ROM image from disk.

package main

import (
	"fmt"
	"os"
)

// LoadROMFile reads path and installs it as mem's ROM. ErrRomMissing
// wraps any stat/open failure (including "not found"); ErrRomWrongSize
// comes straight from Memory.LoadROM.
func LoadROMFile(mem *Memory, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRomMissing, path, err)
	}
	if err := mem.LoadROM(data); err != nil {
		return err
	}
	return nil
}
