package contribution

import "github.com/heartmarshall/flock-backend/internal/domain"

// Report is one page of a member's unified contribution history together
// with totals over the full history.
type Report struct {
	Member        *domain.Member
	Totals        domain.ContributionTotals
	Contributions []domain.UnifiedContribution
	Pagination    domain.PageInfo
}
