// Package schemafile loads layout descriptions from YAML or JSON documents.
//
// A document names the structure and lists its fields in order, most
// significant bits first. Offsets are computed from declaration order
// unless a field pins one explicitly:
//
//	name: ipv4-header
//	byte_order: big
//	fields:
//	  - name: version
//	    width: 4
//	  - name: ihl
//	    width: 4
//	  - name: tos
//	    width: 8
//	    kind: enum
//	    values: {0: routine, 1: priority}
//	  - reserved: 16
//	  - name: ttl
//	    width: 8
//	    offset: 64
//
// YAML is a superset of JSON, so JSON documents parse unchanged. The
// document layer only produces the (total_bits, fields) tuple; all layout
// validation stays in the schema package and its typed errors propagate
// through Parse untouched.
package schemafile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bitlens/bitlens/errors"
	"github.com/bitlens/bitlens/schema"
)

type document struct {
	Name      string       `yaml:"name"`
	TotalBits uint         `yaml:"total_bits"`
	BitOrder  string       `yaml:"bit_order"`
	ByteOrder string       `yaml:"byte_order"`
	Fields    []fieldEntry `yaml:"fields"`
}

type fieldEntry struct {
	Name      string            `yaml:"name"`
	Width     uint              `yaml:"width"`
	Kind      string            `yaml:"kind"`
	Offset    *uint             `yaml:"offset"`
	BitOrder  string            `yaml:"bit_order"`
	ByteOrder string            `yaml:"byte_order"`
	Values    map[uint64]string `yaml:"values"`
	Reserved  uint              `yaml:"reserved"`
}

// Load reads and parses a schema document from a file.
func Load(path string) (*schema.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidSchema(fmt.Sprintf("reading %s", path), err)
	}
	return Parse(data)
}

// Parse builds a Layout from a YAML or JSON schema document.
func Parse(data []byte) (*schema.Layout, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.InvalidSchema("malformed document", err)
	}
	if len(doc.Fields) == 0 {
		return nil, errors.InvalidSchema("document declares no fields", nil)
	}

	defBit, err := parseBitOrder(doc.BitOrder)
	if err != nil {
		return nil, err
	}
	defByte, err := parseByteOrder(doc.ByteOrder)
	if err != nil {
		return nil, err
	}

	var (
		fields []schema.Field
		pos    uint
		maxEnd uint
	)
	for i, e := range doc.Fields {
		if e.Reserved > 0 {
			if e.Name != "" || e.Width > 0 {
				return nil, errors.InvalidSchema(
					fmt.Sprintf("fields[%d]: reserved entries take no name or width", i), nil)
			}
			pos += e.Reserved
			if pos > maxEnd {
				maxEnd = pos
			}
			continue
		}
		if e.Name == "" {
			return nil, errors.InvalidSchema(fmt.Sprintf("fields[%d]: missing name", i), nil)
		}

		kind, err := parseKind(e.Kind)
		if err != nil {
			return nil, errors.InvalidSchema(fmt.Sprintf("fields[%d] (%s)", i, e.Name), err)
		}

		width := e.Width
		if width == 0 && kind == schema.KindBool {
			width = 1
		}

		offset := pos
		if e.Offset != nil {
			offset = *e.Offset
		}

		opts := []schema.FieldOption{
			schema.WithBitOrder(defBit),
			schema.WithByteOrder(defByte),
		}
		if e.BitOrder != "" {
			o, err := parseBitOrder(e.BitOrder)
			if err != nil {
				return nil, err
			}
			opts = append(opts, schema.WithBitOrder(o))
		}
		if e.ByteOrder != "" {
			o, err := parseByteOrder(e.ByteOrder)
			if err != nil {
				return nil, err
			}
			opts = append(opts, schema.WithByteOrder(o))
		}
		if len(e.Values) > 0 {
			if kind != schema.KindEnum {
				return nil, errors.InvalidSchema(
					fmt.Sprintf("fields[%d] (%s): values given for %s field", i, e.Name, kind), nil)
			}
			opts = append(opts, schema.WithEnumValues(e.Values))
		}

		f, err := schema.NewField(e.Name, offset, width, kind, opts...)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)

		pos = offset + width
		if pos > maxEnd {
			maxEnd = pos
		}
	}

	total := doc.TotalBits
	if total == 0 {
		total = maxEnd
	}

	l, err := schema.New(total, fields)
	if err != nil {
		return nil, err
	}
	return l.WithName(doc.Name), nil
}

func parseKind(s string) (schema.Kind, error) {
	switch s {
	case "", "uint":
		return schema.KindUint, nil
	case "int":
		return schema.KindInt, nil
	case "bool":
		return schema.KindBool, nil
	case "float":
		return schema.KindFloat, nil
	case "enum":
		return schema.KindEnum, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

func parseBitOrder(s string) (schema.BitOrder, error) {
	switch s {
	case "", "msb":
		return schema.MSBFirst, nil
	case "lsb":
		return schema.LSBFirst, nil
	default:
		return 0, errors.InvalidSchema(fmt.Sprintf("unknown bit_order %q", s), nil)
	}
}

func parseByteOrder(s string) (schema.ByteOrder, error) {
	switch s {
	case "", "big":
		return schema.BigEndian, nil
	case "little":
		return schema.LittleEndian, nil
	default:
		return 0, errors.InvalidSchema(fmt.Sprintf("unknown byte_order %q", s), nil)
	}
}
