package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arkusai/memgraph/access"
)

// parseNativeTrace reads spec.md §6's native textual trace format — one
// record per line, "R|W|M,0xADDR,SIZE,TIMESTAMP" — and returns the
// decoded accesses in file order. Blank lines and lines starting with
// '#' are skipped, matching a plain CSV-with-comments convention rather
// than inventing a stricter grammar.
func parseNativeTrace(r io.Reader) ([]access.MemoryAccess, error) {
	scanner := bufio.NewScanner(r)
	// Traces can carry very long lines once addresses and timestamps grow;
	// give the scanner generous headroom beyond bufio's 64KiB default.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []access.MemoryAccess
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		a, err := parseNativeLine(text)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		out = append(out, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}

	return out, nil
}

func parseNativeLine(text string) (access.MemoryAccess, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 4 {
		return access.MemoryAccess{}, fmt.Errorf("expected 4 comma-separated fields, got %d", len(fields))
	}

	op, err := parseOp(strings.TrimSpace(fields[0]))
	if err != nil {
		return access.MemoryAccess{}, err
	}

	addr, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 0, 64)
	if err != nil {
		return access.MemoryAccess{}, fmt.Errorf("address %q: %w", fields[1], err)
	}

	size, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 8)
	if err != nil {
		return access.MemoryAccess{}, fmt.Errorf("size %q: %w", fields[2], err)
	}

	ts, err := strconv.ParseUint(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return access.MemoryAccess{}, fmt.Errorf("timestamp %q: %w", fields[3], err)
	}

	return access.MemoryAccess{Op: op, Address: addr, Size: uint8(size), Timestamp: ts}, nil
}

func parseOp(s string) (access.OpKind, error) {
	switch s {
	case "R":
		return access.Read, nil
	case "W":
		return access.Write, nil
	case "M":
		return access.Modify, nil
	default:
		return 0, fmt.Errorf("%w: %q", access.ErrUnknownOp, s)
	}
}

// expandModifies splits every Modify access into an adjacent Read then
// Write pair at the same address and timestamp, per the native format's
// documented M-record semantics (access.OpKind's Modify doc comment).
func expandModifies(in []access.MemoryAccess) []access.MemoryAccess {
	out := make([]access.MemoryAccess, 0, len(in))
	for _, a := range in {
		if a.Op != access.Modify {
			out = append(out, a)
			continue
		}
		out = append(out,
			access.MemoryAccess{Op: access.Read, Address: a.Address, Size: a.Size, Timestamp: a.Timestamp},
			access.MemoryAccess{Op: access.Write, Address: a.Address, Size: a.Size, Timestamp: a.Timestamp},
		)
	}

	return out
}
