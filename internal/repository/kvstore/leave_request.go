package kvstore

import (
	"context"
	"sort"

	"github.com/nexus-os/office-backend/internal/domain/leave"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type leaveRequestRepositoryImpl struct {
	store *store.Store
}

func NewLeaveRequestRepository(s *store.Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: s}
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	all, err := store.Read(ctx, r.store, KeyLeaves, []leave.LeaveRequest{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	all, err := store.Read(ctx, r.store, KeyLeaves, []leave.LeaveRequest{})
	if err != nil {
		return nil, err
	}
	out := []leave.LeaveRequest{}
	for _, req := range all {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *leaveRequestRepositoryImpl) Save(ctx context.Context, requests []leave.LeaveRequest) error {
	return r.store.Write(ctx, KeyLeaves, requests)
}
