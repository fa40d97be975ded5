package ccf

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// charsetReader decodes documents whose prolog declares a non-UTF-8 encoding,
// e.g. windows-1252 exports from the diagnostic software.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("ccf: charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("ccf: charset %q is not supported", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
