package upf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrDecode indicates a malformed TOML bundle document.
var ErrDecode = errors.New("upf: cannot decode bundle")

// DecodeTOML reads a Bundle from TOML. This is the fixture/interchange
// codec used throughout the test suites and example programs; real UPF
// files go through an external parser that fills a Bundle directly.
func DecodeTOML(r io.Reader) (*Bundle, error) {
	var b Bundle
	if _, err := toml.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &b, nil
}

// LoadTOML reads a Bundle from the TOML document at path.
func LoadTOML(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()
	return DecodeTOML(f)
}
