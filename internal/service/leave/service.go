package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/domain/leave"
	"github.com/nexus-os/office-backend/internal/domain/notification"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type LeaveServiceImpl struct {
	tx store.Mutator
	leave.LeaveRequestRepository
	notificationService notification.Service
	clock               clock.Clock
	latency             latency.Simulator
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	if err := l.latency.Wait(ctx, latency.CreateLeave); err != nil {
		return leave.LeaveRequest{}, err
	}

	newRequest := leave.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		UserName:  req.UserName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Type:      req.Type,
		Status:    leave.StatusPending,
		CreatedAt: l.clock.Now(),
	}

	err := l.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := l.LeaveRequestRepository.List(ctx)
		if err != nil {
			return err
		}
		if err := l.LeaveRequestRepository.Save(ctx, append([]leave.LeaveRequest{newRequest}, all...)); err != nil {
			return err
		}

		_, err = l.notificationService.Push(ctx, notification.CreateNotificationRequest{
			TargetRole: notification.TargetAdmin,
			Message:    fmt.Sprintf("%s requested %s leave", req.UserName, req.Type),
			Type:       notification.TypeAlert,
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave requested", "id", newRequest.ID, "user_id", newRequest.UserID, "type", newRequest.Type)
	return newRequest, nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) error {
	if !req.Status.IsDecision() {
		return leave.ErrInvalidStatus
	}
	if err := l.latency.Wait(ctx, latency.UpdateLeaveStatus); err != nil {
		return err
	}

	return l.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := l.LeaveRequestRepository.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}

		idx := -1
		for i, r := range all {
			if r.ID == req.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil
		}
		if all[idx].Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		all[idx].Status = req.Status
		if err := l.LeaveRequestRepository.Save(ctx, all); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		notificationType := notification.TypeAlert
		if req.Status == leave.StatusApproved {
			notificationType = notification.TypeSuccess
		}
		requester := all[idx].UserID
		if _, err := l.notificationService.Push(ctx, notification.CreateNotificationRequest{
			TargetRole:   notification.TargetEmployee,
			TargetUserID: &requester,
			Message:      fmt.Sprintf("Your leave request was %s", strings.ToLower(string(req.Status))),
			Type:         notificationType,
		}); err != nil {
			return fmt.Errorf("failed to notify requester: %w", err)
		}

		slog.Info("leave request decided", "id", req.ID, "status", req.Status)
		return nil
	})
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

func NewLeaveService(tx store.Mutator, leaveRequestRepository leave.LeaveRequestRepository, notificationService notification.Service, c clock.Clock, lat latency.Simulator) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		notificationService:    notificationService,
		clock:                  c,
		latency:                lat,
	}
}
