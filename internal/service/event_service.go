package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
	"club-portal/backend/internal/repository"
	"club-portal/backend/pkg/database"
	apperrors "club-portal/backend/pkg/errors"
)

var (
	ErrEventNotFound        = apperrors.NotFound("活动不存在")
	ErrInvalidTimeRange     = apperrors.Validation("结束时间必须晚于开始时间")
	ErrEventFull            = apperrors.Conflict("活动报名已额满")
	ErrCapacityTooSmall     = apperrors.Validation("人数上限不能低于当前已报名人数")
	ErrAlreadyRegistered    = apperrors.Conflict("您已经报名过此活动")
	ErrRegistrationNotFound = apperrors.NotFound("找不到报名记录")
)

// EventService 活动与报名业务接口
type EventService interface {
	List(ctx context.Context, req *dto.EventListRequest) ([]model.EventDetail, error)
	Get(ctx context.Context, id int64) (*dto.EventView, error)
	Create(ctx context.Context, caller *policy.Identity, req *dto.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, caller *policy.Identity, id int64) error

	// Register 为调用者自己的社员档案报名活动
	Register(ctx context.Context, caller *policy.Identity, eventID int64, req *dto.RegisterEventRequest) (*model.Registration, error)
	// CancelRegistration 取消调用者自己的报名
	CancelRegistration(ctx context.Context, caller *policy.Identity, eventID int64) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// ────────────────────── List / Get ──────────────────────

func (s *eventService) List(ctx context.Context, req *dto.EventListRequest) ([]model.EventDetail, error) {
	list, err := s.repo.Event.List(ctx, repository.EventFilter{
		DepartmentID: req.DepartmentID,
		Status:       req.Status,
		Upcoming:     req.Upcoming,
	})
	if err != nil {
		return nil, storeError(s.logger, "查询活动列表失败", err, nil)
	}
	return list, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*dto.EventView, error) {
	e, err := s.repo.Event.GetDetail(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询活动失败", err, ErrEventNotFound, zap.Int64("id", id))
	}

	regs, err := s.repo.Registration.ListByEvent(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询报名名单失败", err, nil, zap.Int64("event_id", id))
	}

	return &dto.EventView{EventDetail: *e, Registrations: regs}, nil
}

// ────────────────────── Create ──────────────────────

func (s *eventService) Create(ctx context.Context, caller *policy.Identity, req *dto.CreateEventRequest) (*model.Event, error) {
	if err := policy.Authorize(caller, policy.EventCreate, policy.InDepartment(req.DepartmentID)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyContent
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	createdBy := caller.UserID
	e := &model.Event{
		Title:           title,
		Description:     req.Description,
		DepartmentID:    req.DepartmentID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		Status:          model.EventStatusUpcoming,
		CreatedBy:       &createdBy,
	}
	if err := s.repo.Event.Create(ctx, e); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, storeError(s.logger, "建立活动失败", err, nil)
	}
	return e, nil
}

// ────────────────────── Update ──────────────────────

func (s *eventService) Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateEventRequest) (*model.Event, error) {
	e, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询活动失败", err, ErrEventNotFound, zap.Int64("id", id))
	}

	target := policy.Target{DepartmentID: e.DepartmentID, NewDepartmentID: req.DepartmentID}
	if err := policy.Authorize(caller, policy.EventUpdate, target); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			e.Title = t
		}
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.DepartmentID != nil {
		e.DepartmentID = req.DepartmentID
	}
	if req.StartTime != nil {
		e.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		e.EndTime = *req.EndTime
	}
	if req.Location != nil {
		e.Location = req.Location
	}
	if req.MaxParticipants != nil {
		e.MaxParticipants = req.MaxParticipants
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if !e.EndTime.After(e.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	if err := s.repo.Event.Update(ctx, e); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityBelowRegistered):
			return nil, ErrCapacityTooSmall
		case database.IsForeignKeyViolation(err):
			return nil, ErrDepartmentNotFound
		}
		return nil, storeError(s.logger, "更新活动失败", err, ErrEventNotFound, zap.Int64("id", id))
	}
	return e, nil
}

// ────────────────────── Delete ──────────────────────

func (s *eventService) Delete(ctx context.Context, caller *policy.Identity, id int64) error {
	e, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		return storeError(s.logger, "查询活动失败", err, ErrEventNotFound, zap.Int64("id", id))
	}

	if err := policy.Authorize(caller, policy.EventDelete, policy.InDepartment(e.DepartmentID)); err != nil {
		return err
	}

	if err := s.repo.Event.Delete(ctx, id); err != nil {
		return storeError(s.logger, "删除活动失败", err, ErrEventNotFound, zap.Int64("id", id))
	}
	return nil
}

// ────────────────────── Registration ──────────────────────

func (s *eventService) Register(ctx context.Context, caller *policy.Identity, eventID int64, req *dto.RegisterEventRequest) (*model.Registration, error) {
	if err := policy.Authorize(caller, policy.RegistrationCreate, policy.Target{}); err != nil {
		return nil, err
	}

	member, err := s.repo.Member.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, storeError(s.logger, "查询社员资料失败", err, ErrNoProfile, zap.Int64("user_id", caller.UserID))
	}

	reg := &model.Registration{
		EventID:  eventID,
		MemberID: member.ID,
		Status:   model.RegistrationStatusRegistered,
		Notes:    req.Notes,
	}
	if err := s.repo.Registration.CreateWithinCapacity(ctx, reg); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, ErrEventFull
		case database.IsUniqueViolation(err, "registrations_event_member_key"):
			return nil, ErrAlreadyRegistered
		}
		return nil, storeError(s.logger, "报名失败", err, ErrEventNotFound,
			zap.Int64("event_id", eventID), zap.Int64("member_id", member.ID))
	}

	s.logger.Info("活动报名", zap.Int64("event_id", eventID), zap.Int64("member_id", member.ID))
	return reg, nil
}

func (s *eventService) CancelRegistration(ctx context.Context, caller *policy.Identity, eventID int64) error {
	if err := policy.Authorize(caller, policy.RegistrationCancel, policy.Target{}); err != nil {
		return err
	}

	member, err := s.repo.Member.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return storeError(s.logger, "查询社员资料失败", err, ErrNoProfile, zap.Int64("user_id", caller.UserID))
	}

	if err := s.repo.Registration.Delete(ctx, eventID, member.ID); err != nil {
		return storeError(s.logger, "取消报名失败", err, ErrRegistrationNotFound,
			zap.Int64("event_id", eventID), zap.Int64("member_id", member.ID))
	}
	return nil
}
