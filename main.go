// main.go - CLI entry point: loads a ROM and an optional SNA/Z80
// snapshot, then drives the frame loop, rendering to the terminal and
// reading keystrokes from stdin via TerminalHost.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	romPath := flag.String("rom", "48.rom", "path to the 16KiB ZX Spectrum ROM image")
	flag.Parse()

	var snapshotPath string
	if flag.NArg() > 0 {
		snapshotPath = flag.Arg(0)
	}

	m := NewMachine()
	if err := LoadROMFile(m.Memory, *romPath); err != nil {
		fmt.Fprintf(os.Stderr, "zxspectrum: %v\n", err)
		os.Exit(1)
	}
	m.Reset()

	if snapshotPath != "" {
		if err := loadSnapshotFile(m, snapshotPath); err != nil {
			fmt.Fprintf(os.Stderr, "zxspectrum: %v\n", err)
			os.Exit(1)
		}
	}

	host := NewTerminalHost()
	host.Start()
	defer host.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	fmt.Fprint(os.Stderr, "\033[2J")

	frameInterval := time.Second / 50
	lastSpeedReport := time.Now()
	framesSinceReport := 0

	for {
		select {
		case <-sigCh:
			os.Exit(130)
		default:
		}

		start := time.Now()
		frame := m.RunFrame(host.Poll)
		w, h := m.Video.FrameDimensions()
		RenderFrame(os.Stdout, frame, w, h)

		framesSinceReport++
		if elapsed := time.Since(lastSpeedReport); elapsed >= time.Second {
			fps := float64(framesSinceReport) / elapsed.Seconds()
			fmt.Fprintf(os.Stderr, "\033[s\033[1;1H%.1f fps (%.1f%% real time)\033[u", fps, fps/50*100)
			framesSinceReport = 0
			lastSpeedReport = time.Now()
		}

		if wait := frameInterval - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
	}
}

// loadSnapshotFile dispatches to LoadSNA or LoadZ80 by file extension.
func loadSnapshotFile(m *Machine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".sna":
		return LoadSNA(m, data)
	case ".z80":
		return LoadZ80(m, data)
	default:
		return fmt.Errorf("%w: unrecognized snapshot extension %q", ErrSnapshotMalformed, filepath.Ext(path))
	}
}
