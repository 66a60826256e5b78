package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/bitlens/bitlens/engine"
	"github.com/bitlens/bitlens/schema"
	"github.com/bitlens/bitlens/schemafile"
)

func main() {
	var (
		schemaPath  = flag.String("schema", "", "Path to layout schema (YAML or JSON)")
		dataPath    = flag.String("data", "", "Path to binary data file")
		fieldName   = flag.String("field", "", "Read a single field by name")
		setExpr     = flag.String("set", "", "Assign a field (name=value)")
		outPath     = flag.String("out", "", "Output file for -set (default: overwrite -data)")
		list        = flag.Bool("list", false, "List schema fields and exit")
		hex         = flag.Bool("hex", false, "Hex dump the buffer after decoding")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -schema <layout.yaml> -data <file> [-field name]")
		fmt.Fprintln(os.Stderr, "       inspect -schema <layout.yaml> -data <file> -set name=value [-out file]")
		fmt.Fprintln(os.Stderr, "       inspect -schema <layout.yaml> -list")
		fmt.Fprintln(os.Stderr, "       inspect -schema <layout.yaml> -data <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			engine.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if err := run(*schemaPath, *dataPath, *fieldName, *setExpr, *outPath, *list, *hex, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, dataPath, fieldName, setExpr, outPath string, list, hex, interactive bool) error {
	layout, err := schemafile.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	if list {
		printSchema(layout)
		return nil
	}

	if dataPath == "" {
		return fmt.Errorf("-data is required unless -list is given")
	}
	buf, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(layout, buf, dataPath)
	}

	if setExpr != "" {
		name, raw, found := strings.Cut(setExpr, "=")
		if !found {
			return fmt.Errorf("-set wants name=value, got %q", setExpr)
		}
		f, err := layout.Field(name)
		if err != nil {
			return err
		}
		v, err := parseValue(f, raw)
		if err != nil {
			return err
		}
		if err := engine.Write(layout, name, v, buf); err != nil {
			return err
		}
		if outPath == "" {
			outPath = dataPath
		}
		if err := os.WriteFile(outPath, buf, 0o644); err != nil {
			return fmt.Errorf("write data: %w", err)
		}
		fmt.Printf("%s = %s -> %s\n", name, v, outPath)
		return nil
	}

	if fieldName != "" {
		v, err := engine.Read(layout, fieldName, buf)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", fieldName, v)
	} else {
		decoded, err := engine.ReadAll(layout, buf)
		if err != nil {
			return err
		}
		if layout.Name() != "" {
			fmt.Printf("%s (%d bits, %d bytes)\n", layout.Name(), layout.TotalBits(), layout.SizeBytes())
		}
		for _, fv := range decoded {
			f := fv.Field
			fmt.Printf("  %-20s [%4d:%-4d) %-5s = %s\n",
				f.Name(), f.BitOffset(), f.BitOffset()+f.BitWidth(), f.Kind(), fv.Value)
		}
	}

	if hex {
		hexDump(os.Stdout, buf)
	}
	return nil
}

func printSchema(layout *schema.Layout) {
	fmt.Printf("%s: %d bits (%d bytes), %d fields\n",
		layout.Name(), layout.TotalBits(), layout.SizeBytes(), layout.NumFields())
	for _, f := range layout.Fields() {
		fmt.Printf("  %-20s offset=%-5d width=%-3d kind=%-5s bits=%s bytes=%s\n",
			f.Name(), f.BitOffset(), f.BitWidth(), f.Kind(), f.BitOrder(), f.ByteOrder())
	}
}

// parseValue interprets raw per the field's kind. Integers accept any
// base strconv does (0x.., 0b.., decimal); enums also accept a label.
func parseValue(f schema.Field, raw string) (engine.Value, error) {
	switch f.Kind() {
	case schema.KindUint:
		u, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return engine.Value{}, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		return engine.Uint(u), nil

	case schema.KindEnum:
		if u, err := strconv.ParseUint(raw, 0, 64); err == nil {
			return engine.Uint(u), nil
		}
		if v, ok := f.EnumValue(raw); ok {
			return engine.Uint(v), nil
		}
		return engine.Value{}, fmt.Errorf("field %s: no enum label %q", f.Name(), raw)

	case schema.KindInt:
		i, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return engine.Value{}, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		return engine.Int(i), nil

	case schema.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return engine.Value{}, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		return engine.Bool(b), nil

	case schema.KindFloat:
		fl, err := strconv.ParseFloat(raw, int(f.BitWidth()))
		if err != nil {
			return engine.Value{}, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		if f.BitWidth() == 32 {
			return engine.Float32(float32(fl)), nil
		}
		return engine.Float64(fl), nil
	}
	return engine.Value{}, fmt.Errorf("field %s: unhandled kind %s", f.Name(), f.Kind())
}
