package driven

import (
	"io"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// PayslipRenderer writes printable payslips.
type PayslipRenderer interface {
	// Render writes one page per record to w.
	Render(w io.Writer, records []domain.PayrollRecord) error
}
