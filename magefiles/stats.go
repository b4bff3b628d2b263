//go:build mage

package main

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// codeStats is the record printed by Stats.
type codeStats struct {
	Prod    int            `json:"go_loc_prod"`
	Test    int            `json:"go_loc_test"`
	Total   int            `json:"go_loc"`
	ByTree  map[string]int `json:"go_loc_by_tree"`
	Entries int            `json:"reg_constructor_calls"`
}

var skipDirs = map[string]bool{
	"vendor": true, ".git": true, "_examples": true, "testdata": true,
	"magefiles": true, binaryDir: true, benchDir: true,
}

// Stats prints Go line counts per top-level tree, split into production
// and test code, with the number of registry constructor calls outside
// tests.
func Stats() error {
	st := codeStats{ByTree: map[string]int{}}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		n := bytes.Count(src, []byte("\n"))
		if len(src) > 0 && src[len(src)-1] != '\n' {
			n++
		}

		tree, _, _ := strings.Cut(filepath.ToSlash(path), "/")
		st.ByTree[tree] += n
		if strings.HasSuffix(path, "_test.go") {
			st.Test += n
			return nil
		}
		st.Prod += n
		for _, ctor := range []string{"reg.Static", "reg.ReadOnly", "reg.ReadWrite"} {
			st.Entries += bytes.Count(src, []byte(ctor))
		}
		return nil
	})
	if err != nil {
		return err
	}
	st.Total = st.Prod + st.Test
	return json.NewEncoder(os.Stdout).Encode(st)
}
