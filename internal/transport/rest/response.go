package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	writeJSON(w, status, messageResponse{Message: message, Error: err.Error()})
}

// amount renders an exact decimal as a JSON number without a float round trip.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

type churchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type orgUnitResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type memberResponse struct {
	ID         string           `json:"id"`
	FirstName  string           `json:"firstName"`
	LastName   string           `json:"lastName"`
	FullName   string           `json:"fullName"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Status     string           `json:"status"`
	Church     *churchResponse  `json:"church"`
	Cell       *orgUnitResponse `json:"cell"`
	Group      *orgUnitResponse `json:"group"`
	Department *orgUnitResponse `json:"department"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func toMemberResponse(m *domain.Member) memberResponse {
	resp := memberResponse{
		ID:         m.ID.String(),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		FullName:   m.FullName(),
		Email:      m.Email,
		Phone:      m.Phone,
		Status:     m.Status.String(),
		Cell:       toOrgUnitResponse(m.Cell),
		Group:      toOrgUnitResponse(m.Group),
		Department: toOrgUnitResponse(m.Department),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Church != nil {
		resp.Church = &churchResponse{ID: m.Church.ID.String(), Name: m.Church.Name}
	}
	return resp
}

func toOrgUnitResponse(u *domain.OrgUnit) *orgUnitResponse {
	if u == nil {
		return nil
	}
	return &orgUnitResponse{ID: u.ID.String(), Kind: u.Kind.String(), Name: u.Name}
}

type paginationResponse struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	HasPrev     bool `json:"hasPrev"`
	HasNext     bool `json:"hasNext"`
	PrevPage    *int `json:"prevPage"`
	NextPage    *int `json:"nextPage"`
	Limit       int  `json:"limit"`
}

func toPaginationResponse(p domain.PageInfo) paginationResponse {
	return paginationResponse{
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		HasPrev:     p.HasPrev,
		HasNext:     p.HasNext,
		PrevPage:    p.PrevPage,
		NextPage:    p.NextPage,
		Limit:       p.Limit,
	}
}

// ---------------------------------------------------------------------------
// Contributions
// ---------------------------------------------------------------------------

type totalsResponse struct {
	TotalTithe         json.Number `json:"totalTithe"`
	TotalWelfare       json.Number `json:"totalWelfare"`
	TotalSpecialFund   json.Number `json:"totalSpecialFund"`
	TotalChurchProject json.Number `json:"totalChurchProject"`
	TotalContributions json.Number `json:"totalContributions"`
}

type contributionResponse struct {
	Type          string      `json:"type"`
	Amount        json.Number `json:"amount"`
	Date          time.Time   `json:"date"`
	PaymentMethod string      `json:"paymentMethod"`
}

type memberContributionsResponse struct {
	Message       string                 `json:"message"`
	Member        memberResponse         `json:"member"`
	MemberStatus  string                 `json:"memberStatus"`
	Totals        totalsResponse         `json:"totals"`
	Contributions []contributionResponse `json:"contributions"`
	Pagination    paginationResponse     `json:"pagination"`
}

func toTotalsResponse(t domain.ContributionTotals) totalsResponse {
	return totalsResponse{
		TotalTithe:         amount(t.Tithe),
		TotalWelfare:       amount(t.Welfare),
		TotalSpecialFund:   amount(t.SpecialFund),
		TotalChurchProject: amount(t.ChurchProject),
		TotalContributions: amount(t.Total),
	}
}

func toContributionResponses(items []domain.UnifiedContribution) []contributionResponse {
	out := make([]contributionResponse, len(items))
	for i, c := range items {
		out[i] = contributionResponse{
			Type:          c.Type,
			Amount:        amount(c.Amount),
			Date:          c.Date.UTC(),
			PaymentMethod: c.PaymentMethod,
		}
	}
	return out
}

type memberListResponse struct {
	Message    string             `json:"message"`
	Members    []memberResponse   `json:"members"`
	Pagination paginationResponse `json:"pagination"`
}
