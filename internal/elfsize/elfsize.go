// Package elfsize measures the text, data and bss sizes of ELF binaries in
// the layout of the BSD size(1) utility and compares two of them.
package elfsize

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
)

var ErrNotELF = errors.New("not an ELF file")

// Sizes holds the section totals of one binary.
type Sizes struct {
	Name string
	Text uint64
	Data uint64
	BSS  uint64
}

// Dec is the total size in bytes.
func (s Sizes) Dec() uint64 { return s.Text + s.Data + s.BSS }

// Read measures the ELF file at path.
func Read(path string) (Sizes, error) {
	f, err := elf.Open(path)
	if err != nil {
		var fe *elf.FormatError
		if errors.As(err, &fe) {
			return Sizes{}, fmt.Errorf("%w: %s: %v", ErrNotELF, path, err)
		}
		return Sizes{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s := Measure(f.Sections)
	s.Name = path
	return s, nil
}

// Measure sums allocated sections. Executable or read-only sections count as
// text, writable ones as data, and allocated NOBITS sections as bss.
func Measure(sections []*elf.Section) Sizes {
	var s Sizes
	for _, sec := range sections {
		if sec.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		switch {
		case sec.Type == elf.SHT_NOBITS:
			s.BSS += sec.Size
		case sec.Flags&elf.SHF_EXECINSTR != 0 || sec.Flags&elf.SHF_WRITE == 0:
			s.Text += sec.Size
		default:
			s.Data += sec.Size
		}
	}
	return s
}

// Comparison is the result of comparing binary A against binary B.
type Comparison struct {
	A, B Sizes
}

// Compare measures both binaries.
func Compare(a, b string) (Comparison, error) {
	sa, err := Read(a)
	if err != nil {
		return Comparison{}, err
	}
	sb, err := Read(b)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{A: sa, B: sb}, nil
}

// Delta is A's total minus B's total. Positive means A is larger.
func (c Comparison) Delta() int64 {
	return int64(c.A.Dec()) - int64(c.B.Dec())
}

// Write prints both rows in size(1) layout followed by the delta line.
// With colored set, a growing delta is red and a shrinking one green.
func (c Comparison) Write(w io.Writer, colored bool) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "text\tdata\tbss\tdec\thex\tfilename\t")
	for _, s := range []Sizes{c.A, c.B} {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%x\t%s\t\n", s.Text, s.Data, s.BSS, s.Dec(), s.Dec(), filepath.Base(s.Name))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	d := c.Delta()
	var paint *color.Color
	switch {
	case d > 0:
		paint = color.New(color.FgRed)
	case d < 0:
		paint = color.New(color.FgGreen)
	default:
		paint = color.New(color.Reset)
	}
	if colored {
		paint.EnableColor()
	} else {
		paint.DisableColor()
	}
	_, err := fmt.Fprintf(w, "Δ(dec): %s\n", paint.Sprintf("%+d", d))
	return err
}
