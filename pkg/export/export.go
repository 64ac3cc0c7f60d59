// Package export writes a built geometry detail to disk.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/testmodel/pkg/geo"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output file format.
type Format string

const (
	FormatGLB Format = "glb"
	FormatOBJ Format = "obj"
)

// ResolveFormat returns the explicit format, or infers it from the path
// extension when format is empty.
func ResolveFormat(format, path string) (Format, error) {
	f := strings.ToLower(format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch Format(f) {
	case FormatGLB, FormatOBJ:
		return Format(f), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile writes d to path in the given format (inferred when empty).
func WriteFile(path, format, name string, d *geo.Detail) error {
	f, err := ResolveFormat(format, path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch f {
	case FormatGLB:
		return SaveGLB(path, name, d)
	default:
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteOBJ(out, name, d); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
}
