//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package pla implements the reader and writer for the PLA text
// format used by two-level logic minimizers.
package pla

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/markkurossi/truthtables/table"
)

var reIdent = regexp.MustCompilePOSIX(`^[A-Za-z_][A-Za-z0-9_]*$`)

// count is a header value that may be absent.
type count struct {
	value int
	set   bool
}

// header accumulates the header directives.
type header struct {
	inputs   count
	outputs  count
	products count
	typ      string
	ilb      []string
	ilbLine  int
	ob       []string
	obLine   int
}

// ParseFile parses the PLA file. The cover is named after the file
// when its base name is a valid identifier.
func ParseFile(file string) (*table.Cover, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if !reIdent.MatchString(name) {
		name = table.DefaultName
	}
	return Parse(f, file, name)
}

// Parse parses a PLA from the input. The source names the input in
// error messages and name is the name of the resulting cover.
func Parse(in io.Reader, source, name string) (*table.Cover, error) {
	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}
	hdr, err := parseHeader(lines, source)
	if err != nil {
		return nil, err
	}
	products, err := parseBody(lines, source, hdr)
	if err != nil {
		return nil, err
	}
	if len(products) != hdr.products.value {
		return nil, parseError(source, -1, ErrProductCountMismatch,
			"header declares %d products, found %d",
			hdr.products.value, len(products))
	}

	c, err := table.NewCover(hdr.inputs.value, hdr.outputs.value, products,
		&table.Options{
			Name:    name,
			Inputs:  hdr.ilb,
			Outputs: hdr.ob,
			Type:    hdr.typ,
		})
	if err != nil {
		return nil, parseError(source, -1, err, "%s", err)
	}
	return c, nil
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// isEnd tests if the line is the .e or .end directive. Anything
// after the directive name is ignored.
func isEnd(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && (fields[0] == ".e" || fields[0] == ".end")
}

// parseHeader scans the directive lines.
func parseHeader(lines []string, source string) (*header, error) {
	hdr := &header{
		typ: table.DefaultType,
	}

	for idx, l := range lines {
		line := strings.TrimSpace(l)
		if len(line) == 0 || line[0] != '.' {
			continue
		}
		if isEnd(line) {
			break
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case ".i", ".o", ".p":
			if len(fields) != 2 {
				return nil, parseError(source, idx, ErrMalformedLine,
					"%s expects one value, got %d", fields[0], len(fields)-1)
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 0 {
				return nil, parseError(source, idx, ErrMalformedLine,
					"invalid %s value '%s'", fields[0], fields[1])
			}
			c := count{
				value: v,
				set:   true,
			}
			switch fields[0] {
			case ".i":
				hdr.inputs = c
			case ".o":
				if v == 0 {
					return nil, parseError(source, idx, ErrMalformedLine,
						"PLA has no outputs")
				}
				hdr.outputs = c
			default:
				hdr.products = c
			}

		case ".type":
			if len(fields) != 2 {
				return nil, parseError(source, idx, ErrMalformedLine,
					".type expects one value, got %d", len(fields)-1)
			}
			hdr.typ = fields[1]

		case ".ilb":
			hdr.ilb = fields[1:]
			hdr.ilbLine = idx

		case ".ob":
			hdr.ob = fields[1:]
			hdr.obLine = idx
		}
	}

	if !hdr.inputs.set {
		return nil, parseError(source, -1, ErrMissingHeaderField,
			"number of inputs (.i) not specified")
	}
	if !hdr.outputs.set {
		return nil, parseError(source, -1, ErrMissingHeaderField,
			"number of outputs (.o) not specified")
	}
	if !hdr.products.set {
		return nil, parseError(source, -1, ErrMissingHeaderField,
			"number of products (.p) not specified")
	}
	if hdr.ilb != nil && len(hdr.ilb) != hdr.inputs.value {
		return nil, parseError(source, hdr.ilbLine, ErrArityMismatch,
			".ilb has %d labels, expected %d", len(hdr.ilb), hdr.inputs.value)
	}
	if hdr.ob != nil && len(hdr.ob) != hdr.outputs.value {
		return nil, parseError(source, hdr.obLine, ErrArityMismatch,
			".ob has %d labels, expected %d", len(hdr.ob), hdr.outputs.value)
	}
	return hdr, nil
}

// bodyStart returns the characters that start product lines. Without
// inputs a product line is the output cube alone.
func bodyStart(hdr *header) string {
	if hdr.inputs.value == 0 {
		return "01-~"
	}
	return "01-"
}

// parseBody scans the product lines.
func parseBody(lines []string, source string, hdr *header) (
	[]table.Product, error) {

	var products []table.Product
	start := bodyStart(hdr)

	for idx, l := range lines {
		line := strings.TrimSpace(l)
		if isEnd(line) {
			break
		}
		if len(line) == 0 || strings.IndexByte(start, line[0]) < 0 {
			continue
		}
		sections := strings.Fields(line)
		if len(sections) == 1 && hdr.inputs.value == 0 {
			sections = []string{"", sections[0]}
		}
		if len(sections) != 2 {
			return nil, parseError(source, idx, ErrMalformedLine,
				"line contains %d sections instead of 2", len(sections))
		}
		if len(sections[0]) != hdr.inputs.value {
			return nil, parseError(source, idx, ErrArityMismatch,
				"line contains %d inputs, expected %d",
				len(sections[0]), hdr.inputs.value)
		}
		if len(sections[1]) != hdr.outputs.value {
			return nil, parseError(source, idx, ErrArityMismatch,
				"line contains %d outputs, expected %d",
				len(sections[1]), hdr.outputs.value)
		}
		in, err := table.ParseInputCube(sections[0])
		if err != nil {
			return nil, parseError(source, idx, ErrInvalidSymbol,
				"unexpected character in inputs '%s'", sections[0])
		}
		out, err := table.ParseOutputCube(sections[1])
		if err != nil {
			return nil, parseError(source, idx, ErrInvalidSymbol,
				"unexpected character in outputs '%s'", sections[1])
		}
		products = append(products, table.Product{
			In:  in,
			Out: out,
		})
	}
	return products, nil
}
