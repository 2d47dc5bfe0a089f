package member

import (
	"context"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// ListMembers returns one page of members visible under in.Scope, ordered by
// last name, first name and id. Page and limit are floored at 1.
func (s *Service) ListMembers(ctx context.Context, in ListMembersInput) ([]domain.Member, domain.PageInfo, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.PageInfo{}, err
	}

	var filter domain.MemberFilter
	if in.Status != "" {
		status := domain.MemberStatus(in.Status)
		filter.Status = &status
	}

	req := domain.NewPageRequest(in.Page, in.Limit)
	members, total, err := s.members.List(ctx, in.Scope, filter, req)
	if err != nil {
		return nil, domain.PageInfo{}, domain.NewRetrievalError("list members", err)
	}

	return members, domain.NewPageInfo(total, req), nil
}
