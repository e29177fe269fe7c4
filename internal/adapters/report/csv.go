// Package report writes inventory tables as CSV.
package report

import (
	"encoding/csv"
	"io"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportWriter = (*CSVWriter)(nil)

// CSVWriter implements ports.ReportWriter.
type CSVWriter struct{}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write emits the header followed by every row.
func (c *CSVWriter) Write(w io.Writer, table domain.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(table.Header); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	for i, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "row", i)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	return nil
}
