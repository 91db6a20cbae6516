// Package tablefile persists a packed nibble array as a flat, headerless
// file: exactly nibble.Bytes bytes, raw, index 0 in the low nibble of
// byte 0.
package tablefile

import (
	"errors"
	"fmt"
	"io"

	"github.com/andrewbrown/cornertable/internal/nibble"
)

// ErrShortWrite is returned when the sink accepted fewer bytes than the
// table requires.
var ErrShortWrite = errors.New("tablefile: short write")

// ErrShortRead is returned when the source supplied fewer bytes than the
// table requires.
var ErrShortRead = errors.New("tablefile: short read")

// Write writes the full contents of t to w. It fails if fewer than
// nibble.Bytes bytes were accepted.
func Write(w io.Writer, t *nibble.Array) error {
	n, err := w.Write(t.Bytes())
	if err != nil {
		return fmt.Errorf("tablefile: write: %w", err)
	}
	if n < nibble.Bytes {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, nibble.Bytes)
	}
	return nil
}

// Read fills t with exactly nibble.Bytes bytes read from r. It fails if
// the source supplies fewer.
func Read(r io.Reader, t *nibble.Array) error {
	n, err := io.ReadFull(r, t.Bytes())
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: read %d of %d bytes", ErrShortRead, n, nibble.Bytes)
		}
		return fmt.Errorf("tablefile: read: %w", err)
	}
	return nil
}
