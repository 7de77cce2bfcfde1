// terminal_host.go - CLI host adapter: reads raw stdin on a goroutine
// and translates host keystrokes into Spectrum keyboard matrix events.
// Adapted from the MMIO terminal device this repo's teacher ships;
// that device fed a byte-stream register interface for a running CPU
// to poll, but the Spectrum's keyboard is a row/column matrix, not a
// stream, so this adapter drives Keyboard.KeyDownByName/KeyUpByName
// instead of an input ring buffer.

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// KeyEvent is one raw keystroke, queued by the reader goroutine and
// drained by the frame loop between frames - the one place true
// concurrency survives in this module.
type KeyEvent struct {
	Name string
	Down bool
}

// TerminalHost puts stdin in raw mode, translates bytes to Spectrum
// key names, and queues KeyEvents for the frame loop to apply.
// Only main() calls Start for interactive use; tests construct one
// just to exercise Poll.
type TerminalHost struct {
	events chan KeyEvent

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

func NewTerminalHost() *TerminalHost {
	return &TerminalHost{
		events: make(chan KeyEvent, 64),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start sets stdin to raw, non-blocking mode and begins reading in a
// goroutine. Every byte read is translated via byteToKeyName and
// pushed as a key-down event, immediately followed by a key-up event -
// a real terminal gives no key-release signal, so this module treats
// every byte as a brief tap rather than modeling held keys.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				if name, ok := byteToKeyName(buf[0]); ok {
					h.events <- KeyEvent{Name: name, Down: true}
					h.events <- KeyEvent{Name: name, Down: false}
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop terminates the reader goroutine and restores stdin.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}

// Poll drains every queued key event into kbd, non-blocking. Called
// once per frame from Machine's pollKeyboard hook - this keeps all
// Keyboard mutation confined to the boundary between frames, per the
// cooperative scheduling model.
func (h *TerminalHost) Poll(kbd *Keyboard) {
	for {
		select {
		case ev := <-h.events:
			if ev.Down {
				kbd.KeyDownByName(ev.Name)
			} else {
				kbd.KeyUpByName(ev.Name)
			}
		default:
			return
		}
	}
}

// byteToKeyName maps a raw stdin byte to a hostKeyTable entry name.
// Digits and letters (either case - the Spectrum matrix has no
// separate shift state to recover from a single stdin byte) map
// directly; a couple of control bytes map to the named special keys
// the table recognizes.
func byteToKeyName(b byte) (string, bool) {
	switch {
	case b == '\r' || b == '\n':
		return "Enter", true
	case b == ' ':
		return "Space", true
	case b >= '0' && b <= '9':
		return string([]byte{b}), true
	case b >= 'a' && b <= 'z':
		return string([]byte{b - 32}), true
	case b >= 'A' && b <= 'Z':
		return string([]byte{b}), true
	}
	return "", false
}
