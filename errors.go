package main

import "errors"

// Error taxonomy is narrow by design: everything here is fatal at load
// time. CPU-internal anomalies (unknown ED opcodes, DD/FD fallthrough)
// are not errors — they're documented hardware behavior handled inline
// by the CPU dispatch tables.
var (
	ErrRomMissing                 = errors.New("rom file missing")
	ErrRomWrongSize               = errors.New("rom file wrong size")
	ErrSnapshotMalformed          = errors.New("snapshot malformed")
	ErrUnsupportedSnapshotVersion = errors.New("unsupported snapshot version")
)
