package ports

import (
	"io"

	"go.trai.ch/envscan/internal/core/domain"
)

// ReportWriter serialises inventory tables.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportWriter interface {
	Write(w io.Writer, table domain.Table) error
}
