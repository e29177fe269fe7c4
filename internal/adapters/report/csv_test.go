package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/internal/adapters/report"
	"go.trai.ch/envscan/internal/core/domain"
)

func sampleRecords() []domain.InventoryRecord {
	return []domain.InventoryRecord{
		{Owner: "alice", Project: "proj", Environment: "default", Package: "pandas", Version: "0.20.1", Build: "py36_0", Required: true, Requested: true},
		{Owner: "alice", Project: "proj", Environment: "default", Package: "numpy", Version: "1.12.1", Build: "py36_0", Required: true, RequiredBy: "pandas"},
		{Owner: "alice", Project: "proj", Environment: "default", Package: "requests", Version: "2.14.2", Build: "py36_0"},
		{Owner: "alice", Project: "proj", Environment: "anaconda:root", Package: "numpy", Version: "1.12.1", Build: "py36_0", Required: true, Requested: true},
	}
}

func TestCSVWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		summary    string
		goldenName string
	}{
		{"records", "", "inventory_records"},
		{"project package summary", "project/package", "inventory_project_package"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := domain.ParseSummary(tt.summary)
			require.NoError(t, err)

			buf := &bytes.Buffer{}
			require.NoError(t, report.NewCSVWriter().Write(buf, summary.Apply(sampleRecords())))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCSVWriter_WriteError(t *testing.T) {
	err := report.NewCSVWriter().Write(failingWriter{}, domain.RecordsTable(sampleRecords()))
	require.ErrorContains(t, err, domain.ErrReportWriteFailed.Error())
}
