// Package gen generates Go sources declaring many registry entries, or the
// same number of plain package variables, together with tests that check
// every one of them was initialized. The two flavors are built side by side
// to compare the cost of the registry against raw statics.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// RegImport is the import path of the registry package used by generated code.
const RegImport = "github.com/vladislavmarkov/data-registry/pkg/reg"

// Defaults applied by Generate to zero Options fields.
const (
	DefaultPackage   = "generated"
	DefaultValueType = "uint64"
	DefaultPrefix    = "tag"
	DefaultRawPrefix = "raw"
)

var (
	ErrCountInvalid = errors.New("count must be a positive integer")
	ErrPackage      = errors.New("package name is not a valid identifier")
	ErrPrefix       = errors.New("tag prefix is not a valid identifier")
	ErrValueType    = errors.New("unsupported value type")
	ErrStale        = errors.New("generated files are out of date")
)

// maxConst maps the supported value types to the constant bounding them.
var maxConst = map[string]string{
	"uint":   "math.MaxUint",
	"uint8":  "math.MaxUint8",
	"uint16": "math.MaxUint16",
	"uint32": "math.MaxUint32",
	"uint64": "math.MaxUint64",
}

// Options controls what Generate emits.
type Options struct {
	Count     int
	Package   string
	ValueType string
	Prefix    string
	// Raw emits plain package variables instead of registry entries.
	Raw bool
}

// File is one generated source file.
type File struct {
	Name    string
	Content []byte
}

type data struct {
	Package   string
	ValueType string
	Max       string
	Count     int
	Tags      []string
	RegImport string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.ValueType == "" {
		o.ValueType = DefaultValueType
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
		if o.Raw {
			o.Prefix = DefaultRawPrefix
		}
	}
	return o
}

// Validate checks o after defaults are applied.
func (o Options) Validate() error {
	o = o.withDefaults()
	if o.Count < 1 {
		return fmt.Errorf("%w: %d", ErrCountInvalid, o.Count)
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("%w: %q", ErrPackage, o.Package)
	}
	if !token.IsIdentifier(o.Prefix) {
		return fmt.Errorf("%w: %q", ErrPrefix, o.Prefix)
	}
	if _, ok := maxConst[o.ValueType]; !ok {
		return fmt.Errorf("%w: %q", ErrValueType, o.ValueType)
	}
	return nil
}

// FileNames returns the names Generate uses for o.
func (o Options) FileNames() (src, test string) {
	kind := "entries"
	if o.Raw {
		kind = "raw_statics"
	}
	base := fmt.Sprintf("generated_%d_%s", o.Count, kind)
	return base + ".go", base + "_test.go"
}

// Generate renders the source and test files described by o.
func Generate(o Options) ([]File, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o = o.withDefaults()

	d := data{
		Package:   o.Package,
		ValueType: o.ValueType,
		Max:       maxConst[o.ValueType],
		Count:     o.Count,
		Tags:      make([]string, o.Count),
		RegImport: RegImport,
	}
	for i := range d.Tags {
		d.Tags[i] = o.Prefix + strconv.Itoa(i+1)
	}

	srcTmpl, testTmpl := entriesTmpl, entriesTestTmpl
	if o.Raw {
		srcTmpl, testTmpl = rawTmpl, rawTestTmpl
	}
	srcName, testName := o.FileNames()

	src, err := render(srcTmpl, srcName, d)
	if err != nil {
		return nil, err
	}
	test, err := render(testTmpl, testName, d)
	if err != nil {
		return nil, err
	}
	return []File{
		{Name: srcName, Content: src},
		{Name: testName, Content: test},
	}, nil
}

func render(t *template.Template, name string, d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	out, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return out, nil
}

// Write stores files in dir, creating it if needed.
func Write(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
		Logger().Debug("generated file written",
			zap.String("dir", dir), zap.String("file", f.Name), zap.Int("bytes", len(f.Content)))
	}
	return nil
}
