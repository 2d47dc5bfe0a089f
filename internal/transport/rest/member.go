package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flock-backend/internal/config"
	"github.com/heartmarshall/flock-backend/internal/domain"
	"github.com/heartmarshall/flock-backend/internal/service/contribution"
	"github.com/heartmarshall/flock-backend/internal/service/member"
	"github.com/heartmarshall/flock-backend/internal/transport/dataloader"
	"github.com/heartmarshall/flock-backend/internal/transport/middleware"
)

//go:generate moq -out contribution_service_mock_test.go -pkg rest . contributionService
//go:generate moq -out member_service_mock_test.go -pkg rest . memberService

type contributionService interface {
	GetMemberContributions(ctx context.Context, in contribution.GetMemberContributionsInput) (*contribution.Report, error)
}

type memberService interface {
	ListMembers(ctx context.Context, in member.ListMembersInput) ([]domain.Member, domain.PageInfo, error)
}

// MemberHandler serves member REST endpoints.
type MemberHandler struct {
	contributions contributionService
	members       memberService
	pagination    config.PaginationConfig
	log           *slog.Logger
}

// NewMemberHandler creates a MemberHandler.
func NewMemberHandler(contributions contributionService, members memberService, pagination config.PaginationConfig, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		contributions: contributions,
		members:       members,
		pagination:    pagination,
		log:           logger.With("handler", "member"),
	}
}

// Contributions returns one page of a member's unified contribution history.
// GET /members/{memberId}/contributions?page=1&limit=10
func (h *MemberHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	report, err := h.contributions.GetMemberContributions(r.Context(), contribution.GetMemberContributionsInput{
		MemberID: r.PathValue("memberId"),
		Scope:    scope,
		Page:     domain.ParsePageParam(q.Get("page"), domain.DefaultPage),
		Limit:    domain.ParsePageParam(q.Get("limit"), h.pagination.DefaultLimit),
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Member not found")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "get member contributions",
			slog.String("member_id", r.PathValue("memberId")),
			slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "Member could not be retrieved", err)
		return
	}

	writeJSON(w, http.StatusOK, memberContributionsResponse{
		Message:       "Member retrieved successfully",
		Member:        toMemberResponse(report.Member),
		MemberStatus:  report.Member.Status.String(),
		Totals:        toTotalsResponse(report.Totals),
		Contributions: toContributionResponses(report.Contributions),
		Pagination:    toPaginationResponse(report.Pagination),
	})
}

// List returns one page of the members visible to the caller.
// GET /members?page=1&limit=25&status=active
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	members, page, err := h.members.ListMembers(r.Context(), member.ListMembersInput{
		Scope:  scope,
		Status: q.Get("status"),
		Page:   domain.ParsePageParam(q.Get("page"), domain.DefaultPage),
		Limit:  domain.ParsePageParam(q.Get("limit"), h.pagination.MemberDefaultLimit),
	})
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid member filter", err)
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "list members", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Members could not be retrieved")
		return
	}

	if err := dataloader.FromContext(r.Context()).ExpandMembers(r.Context(), members); err != nil {
		h.log.ErrorContext(r.Context(), "expand members", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Members could not be retrieved")
		return
	}

	resp := memberListResponse{
		Message:    "Members retrieved successfully",
		Members:    make([]memberResponse, len(members)),
		Pagination: toPaginationResponse(page),
	}
	for i := range members {
		resp.Members[i] = toMemberResponse(&members[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// scope resolves the caller's tenant scope, replying 401/403 when there is none.
func (h *MemberHandler) scope(w http.ResponseWriter, r *http.Request) (domain.TenantScope, bool) {
	scope, err := middleware.ScopeFromCtx(r.Context())
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return scope, false
	case err != nil:
		writeMessage(w, http.StatusForbidden, "Forbidden")
		return scope, false
	}
	return scope, true
}
