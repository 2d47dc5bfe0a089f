package contribution

import "github.com/heartmarshall/flock-backend/internal/domain"

// GetMemberContributionsInput holds the parameters for a contribution report.
// Nothing here is rejected: an unparsable MemberID reads as an unknown member
// and Page/Limit are floored at 1.
type GetMemberContributionsInput struct {
	MemberID string
	Scope    domain.TenantScope
	Page     int
	Limit    int
}

func (i GetMemberContributionsInput) pageRequest() domain.PageRequest {
	return domain.NewPageRequest(i.Page, i.Limit)
}
