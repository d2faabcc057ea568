package ports

import "github.com/aalvaropc/kata/internal/domain"

// ReportStore persists text reports.
type ReportStore interface {
	SaveReport(report domain.TextReport) (id string, err error)
}
