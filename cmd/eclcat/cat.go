package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/equinor/ecl3"
)

func catRows(w io.Writer, r io.Reader, spec *ecl3.Spec) error {
	names := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		names[i] = c.Name
	}
	if _, err := fmt.Fprintln(w, strings.Join(append([]string{"REPORT_STEP", "MINISTEP"}, names...), "\t")); err != nil {
		return err
	}

	rows, err := ecl3.ReadSummary(r, spec)
	if err != nil {
		return err
	}

	for i := 0; i < rows.Len(); i++ {
		fields := make([]string, 2+rows.Width())
		fields[0] = fmt.Sprintf("%d", rows.ReportStep(i))
		fields[1] = fmt.Sprintf("%d", rows.Ministep(i))
		for j := 0; j < rows.Width(); j++ {
			fields[2+j] = fmt.Sprintf("%g", rows.Value(i, j))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}

	return nil
}
