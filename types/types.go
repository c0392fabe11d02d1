// Package types provides useful, pre-built implementations of the gflags.Value
// interface for common use cases.
package types

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Counter is a flag type that increments its value each time it appears on the
// command line. It can be used as a boolean flag (`--verbose` repeated) or
// with a value (`--verbose=3`).
type Counter int

// Set implements the gflags.Value interface.
func (c *Counter) Set(val string) error {
	if val == "" || val == "true" {
		*c++

		return nil
	}

	parsed, err := strconv.ParseInt(val, 0, 0)
	if err != nil {
		return fmt.Errorf("invalid value for counter: %w", err)
	}

	if parsed == -1 {
		*c++
	} else {
		*c = Counter(parsed)
	}

	return nil
}

// Get returns inner value for Counter.
func (c *Counter) Get() any { return int(*c) }

// IsBoolFlag returns true, because Counter might be used without value.
func (c *Counter) IsBoolFlag() bool { return true }

// String implements the gflags.Value interface.
func (c *Counter) String() string { return strconv.Itoa(int(*c)) }

// IsCumulative returns true, because Counter might be used multiple times.
func (c *Counter) IsCumulative() bool { return true }

// Type implements the gflags.Value interface.
func (c *Counter) Type() string { return "count" }

// HexBytes is a flag type holding a raw byte buffer entered and
// displayed as a hexadecimal string.
type HexBytes []byte

// Set implements the gflags.Value interface.
func (h *HexBytes) Set(val string) error {
	decoded, err := hex.DecodeString(val)
	if err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	*h = decoded

	return nil
}

// Get returns the decoded byte buffer.
func (h *HexBytes) Get() any { return []byte(*h) }

// String implements the gflags.Value interface.
func (h *HexBytes) String() string { return hex.EncodeToString(*h) }

// Type implements the gflags.Value interface.
func (h *HexBytes) Type() string { return "hex" }
