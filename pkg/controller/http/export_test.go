package http

import "github.com/secmon-lab/chartd/pkg/domain/interfaces"

// Test-only accessor methods for UseCases
func (u *UseCases) Chart() interfaces.Chart {
	return u.chart
}
