package report

import "errors"

var ErrExportPathRequired = errors.New("export path is required")
