package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/flock-backend/internal/domain"
	"github.com/heartmarshall/flock-backend/internal/service/member"
)

var _ memberService = &memberServiceMock{}

type memberServiceMock struct {
	ListMembersFunc func(ctx context.Context, in member.ListMembersInput) ([]domain.Member, domain.PageInfo, error)

	calls struct {
		ListMembers []struct {
			Ctx context.Context
			In  member.ListMembersInput
		}
	}
	lockListMembers sync.RWMutex
}

func (mock *memberServiceMock) ListMembers(ctx context.Context, in member.ListMembersInput) ([]domain.Member, domain.PageInfo, error) {
	if mock.ListMembersFunc == nil {
		panic("memberServiceMock.ListMembersFunc: method is nil but memberService.ListMembers was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  member.ListMembersInput
	}{Ctx: ctx, In: in}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, in)
}

func (mock *memberServiceMock) ListMembersCalls() []struct {
	Ctx context.Context
	In  member.ListMembersInput
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}
