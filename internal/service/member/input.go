package member

import "github.com/heartmarshall/flock-backend/internal/domain"

// ListMembersInput holds the parameters for listing members.
type ListMembersInput struct {
	Scope  domain.TenantScope
	Status string // empty = any
	Page   int
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListMembersInput) Validate() error {
	if i.Status != "" && !domain.MemberStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "must be active or inactive")
	}
	return nil
}
