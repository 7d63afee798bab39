package report

import "time"

// WithNow fija el reloj en tests.
func (uc *ReportUseCase) WithNow(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}
