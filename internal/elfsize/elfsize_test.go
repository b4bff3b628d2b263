package elfsize

import (
	"bytes"
	"debug/elf"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(typ elf.SectionType, flags elf.SectionFlag, size uint64) *elf.Section {
	return &elf.Section{SectionHeader: elf.SectionHeader{Type: typ, Flags: flags, Size: size}}
}

func TestMeasure(t *testing.T) {
	sections := []*elf.Section{
		section(elf.SHT_PROGBITS, elf.SHF_ALLOC|elf.SHF_EXECINSTR, 100), // .text
		section(elf.SHT_PROGBITS, elf.SHF_ALLOC, 40),                    // .rodata
		section(elf.SHT_PROGBITS, elf.SHF_ALLOC|elf.SHF_WRITE, 16),      // .data
		section(elf.SHT_NOBITS, elf.SHF_ALLOC|elf.SHF_WRITE, 8),         // .bss
		section(elf.SHT_PROGBITS, 0, 1000),                              // .debug_info
		section(elf.SHT_SYMTAB, 0, 500),
	}

	got := Measure(sections)
	assert.Equal(t, Sizes{Text: 140, Data: 16, BSS: 8}, got)
	assert.Equal(t, uint64(164), got.Dec())
}

func TestComparisonWrite(t *testing.T) {
	c := Comparison{
		A: Sizes{Name: "/tmp/build/a", Text: 1000, Data: 200, BSS: 56},
		B: Sizes{Name: "b", Text: 900, Data: 200, BSS: 48},
	}
	assert.Equal(t, int64(108), c.Delta())

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"text", "data", "bss", "dec", "hex", "filename"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1000", "200", "56", "1256", "4e8", "a"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"900", "200", "48", "1148", "47c", "b"}, strings.Fields(lines[2]))
	assert.Equal(t, "Δ(dec): +108", lines[3])
}

func TestComparisonWriteColored(t *testing.T) {
	c := Comparison{A: Sizes{Name: "a", Text: 1}, B: Sizes{Name: "b", Text: 3}}

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf, true))
	assert.Contains(t, buf.String(), "\x1b[32m-2")
}

func TestReadExecutable(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}
	exe, err := os.Executable()
	require.NoError(t, err)

	s, err := Read(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, s.Name)
	assert.NotZero(t, s.Text)
	assert.NotZero(t, s.Data+s.BSS)

	c, err := Compare(exe, exe)
	require.NoError(t, err)
	assert.Zero(t, c.Delta())
}

func TestReadNotELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("these are plain notes, not a binary\n"), 0o644))

	_, err := Read(path)
	assert.ErrorIs(t, err, ErrNotELF)

	_, err = Compare(path, path)
	assert.ErrorIs(t, err, ErrNotELF)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
