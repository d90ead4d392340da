package ports

import "hkgbuild/internal/types"

type ReportPort interface {
	ReadPackageList(path string) ([]string, error)
	WriteReport(path string, report types.BatchReport) error
}
