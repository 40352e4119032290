//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package truthtables reads and writes truth tables and covers in the
// supported file formats.
package truthtables

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/markkurossi/truthtables/pla"
	"github.com/markkurossi/truthtables/table"
	"github.com/markkurossi/truthtables/verilog"
)

// Supported file formats.
const (
	FormatPLA     = "pla"
	FormatVerilog = "verilog"
)

// ErrUnsupportedFormat is returned for unknown file formats.
var ErrUnsupportedFormat = errors.New("truthtables: unsupported format")

// Format returns the format of the file. If format is empty, the
// format is inferred from the file extension.
func Format(filename, format string) (string, error) {
	if len(format) == 0 {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".pla":
			return FormatPLA, nil
		case ".v":
			return FormatVerilog, nil
		default:
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
		}
	}
	switch format {
	case FormatPLA, FormatVerilog:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Marshal writes the function in the specified format. The mode
// selects the Verilog emission style and it is ignored for PLA.
func Marshal(out io.Writer, f table.Function, format, mode string) error {
	switch format {
	case FormatPLA:
		return pla.Marshal(out, f)
	case FormatVerilog:
		m, err := verilog.ParseMode(mode)
		if err != nil {
			return err
		}
		return verilog.Emit(out, f, m)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// WriteFile writes the function to the file. The format is inferred
// from the file extension if format is empty. The mode is "case" or
// "sop" and it applies to Verilog output only.
func WriteFile(f table.Function, filename, format, mode string) error {
	format, err := Format(filename, format)
	if err != nil {
		return err
	}
	if format == FormatVerilog && len(mode) == 0 {
		mode = verilog.Case.String()
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	err = Marshal(w, f, format, mode)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}
	return file.Close()
}

// ReadFile reads a cover from the file. Only the PLA format can be
// read.
func ReadFile(filename, format string) (*table.Cover, error) {
	format, err := Format(filename, format)
	if err != nil {
		return nil, err
	}
	if format != FormatPLA {
		return nil, fmt.Errorf("%w: cannot read %s", ErrUnsupportedFormat,
			format)
	}
	return pla.ParseFile(filename)
}
