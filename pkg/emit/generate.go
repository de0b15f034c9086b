package emit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/pinaf/pkg/pins"
)

// Targets names where each artifact goes. "-" means the Stdout writer; an
// empty path skips the artifact.
type Targets struct {
	Definitions string
	Header      string
	Qstr        string
	AFConst     string
	Stdout      io.Writer
}

// Generate renders every artifact in order: definitions, header, qstr,
// constants. Each file is written to a temporary sibling and renamed into
// place, so a failed run never leaves a truncated artifact behind.
func Generate(reg *pins.Registry, prov Provenance, t Targets) error {
	steps := []struct {
		name   string
		path   string
		render func(io.Writer) error
	}{
		{"definitions", t.Definitions, func(w io.Writer) error { return Definitions(w, reg, prov) }},
		{"header", t.Header, func(w io.Writer) error { return Header(w, reg) }},
		{"qstr", t.Qstr, func(w io.Writer) error { return Qstr(w, reg) }},
		{"af constants", t.AFConst, func(w io.Writer) error { return AFConst(w, reg) }},
	}

	for _, s := range steps {
		if s.path == "" {
			continue
		}
		var buf bytes.Buffer
		if err := s.render(&buf); err != nil {
			return fmt.Errorf("emit: render %s: %w", s.name, err)
		}
		if s.path == "-" {
			out := t.Stdout
			if out == nil {
				out = os.Stdout
			}
			if _, err := out.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("emit: write %s: %w", s.name, err)
			}
			continue
		}
		if err := WriteFileAtomic(s.path, buf.Bytes()); err != nil {
			return fmt.Errorf("emit: write %s: %w", s.name, err)
		}
	}
	return nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory. Missing parent directories are created.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
