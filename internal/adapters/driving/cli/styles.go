package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// Palette holds the colours used for command output.
type Palette struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
}

// DefaultPalette returns the default colours.
func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
		Border:  lipgloss.Color("#45475A"), // Border gray
	}
}

// Theme contains the pre-configured styles for command output.
type Theme struct {
	palette Palette

	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
}

// NewTheme creates styles from a palette.
func NewTheme(p Palette) *Theme {
	return &Theme{
		palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Label: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Success: lipgloss.NewStyle().
			Foreground(p.Success),

		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),

		Error: lipgloss.NewStyle().
			Foreground(p.Error),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),
	}
}

// Palette returns the colours used by these styles.
func (t *Theme) Palette() Palette {
	return t.palette
}

// Table renders rows under headers with a rounded border.
func (t *Theme) Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.palette.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			return t.Cell
		}).
		String()
}

// LeaveStatus renders a leave status in its status colour.
func (t *Theme) LeaveStatus(s domain.LeaveStatus) string {
	switch s {
	case domain.LeaveApproved:
		return t.Success.Render(s.String())
	case domain.LeaveRejected:
		return t.Error.Render(s.String())
	default:
		return t.Warning.Render(s.String())
	}
}

// PaymentStatus renders a payment status in its status colour.
func (t *Theme) PaymentStatus(s domain.PaymentStatus) string {
	if s == domain.PaymentPaid {
		return t.Success.Render(s.String())
	}
	return t.Warning.Render(s.String())
}

var theme = NewTheme(DefaultPalette())
