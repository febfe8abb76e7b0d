package iso6709

import (
	"fmt"
	"strings"

	"github.com/kass/go-iso6709/pkg/coord"
)

// FormatList renders each element's ISO wire form in list order. Records
// are self-terminated by '/', so no extra delimiter is needed.
func FormatList(l coord.List) string {
	var b strings.Builder
	for _, c := range l {
		b.WriteString(formatISO(c))
	}
	return b.String()
}

// ParseList decodes a concatenation of terminated records. Any element
// failing validation aborts the whole parse; no partial list is returned.
// Empty input decodes to an empty list.
func ParseList(text string) (coord.List, error) {
	parts := strings.Split(text, string(terminator))
	// the terminator on the final record leaves one trailing empty part
	if parts[len(parts)-1] != "" {
		return nil, fmt.Errorf("%w: list does not end at a record boundary", ErrMissingTerminator)
	}
	parts = parts[:len(parts)-1]

	list := make(coord.List, 0, len(parts))
	for i, part := range parts {
		c, err := Parse(part + string(terminator))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		list = append(list, c)
	}
	return list, nil
}

// Read is the inbound serialization boundary: it decodes raw text handed
// over by an external persistence or markup layer. A single terminated
// record yields a one-element list.
func Read(raw string) (coord.List, error) {
	return ParseList(raw)
}

// WriteList is the outbound counterpart of Read for whole lists.
func WriteList(l coord.List) string {
	return FormatList(l)
}
