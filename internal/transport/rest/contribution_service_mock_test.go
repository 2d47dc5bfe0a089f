package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/flock-backend/internal/service/contribution"
)

var _ contributionService = &contributionServiceMock{}

type contributionServiceMock struct {
	GetMemberContributionsFunc func(ctx context.Context, in contribution.GetMemberContributionsInput) (*contribution.Report, error)

	calls struct {
		GetMemberContributions []struct {
			Ctx context.Context
			In  contribution.GetMemberContributionsInput
		}
	}
	lockGetMemberContributions sync.RWMutex
}

func (mock *contributionServiceMock) GetMemberContributions(ctx context.Context, in contribution.GetMemberContributionsInput) (*contribution.Report, error) {
	if mock.GetMemberContributionsFunc == nil {
		panic("contributionServiceMock.GetMemberContributionsFunc: method is nil but contributionService.GetMemberContributions was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  contribution.GetMemberContributionsInput
	}{Ctx: ctx, In: in}
	mock.lockGetMemberContributions.Lock()
	mock.calls.GetMemberContributions = append(mock.calls.GetMemberContributions, callInfo)
	mock.lockGetMemberContributions.Unlock()
	return mock.GetMemberContributionsFunc(ctx, in)
}

func (mock *contributionServiceMock) GetMemberContributionsCalls() []struct {
	Ctx context.Context
	In  contribution.GetMemberContributionsInput
} {
	mock.lockGetMemberContributions.RLock()
	calls := mock.calls.GetMemberContributions
	mock.lockGetMemberContributions.RUnlock()
	return calls
}
