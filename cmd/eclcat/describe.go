package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/equinor/ecl3"
)

// describeDoc is the YAML front-matter printed when --describe is passed:
// the column plan eclcat resolved from the .SMSPEC file, before any row
// data.
type describeDoc struct {
	NLIST   int      `yaml:"nlist"`
	Columns []string `yaml:"columns"`
}

func printDescribe(w io.Writer, spec *ecl3.Spec) error {
	names := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		names[i] = c.Name
	}
	doc := describeDoc{NLIST: spec.NLIST, Columns: names}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "---\n")
	return err
}
