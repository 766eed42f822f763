package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/repository"
)

const (
	calendarProductID = "-//club-portal//events//ZH"
	calendarName      = "社团活动"
)

// ═══════════════════════════════════════════════════════════
// ExportEventCalendar 导出活动日历
// ═══════════════════════════════════════════════════════════
//
// 每个活动对应一个 VEVENT，UID 固定为 event-<id>@club-portal，
// 日历软件重复订阅时按 UID 覆盖而不是重复添加

func (s *exportService) ExportEventCalendar(ctx context.Context, req *dto.EventListRequest) (*bytes.Buffer, string, error) {
	events, err := s.repo.Event.List(ctx, repository.EventFilter{
		DepartmentID: req.DepartmentID,
		Status:       req.Status,
		Upcoming:     req.Upcoming,
	})
	if err != nil {
		return nil, "", storeError(s.logger, "查询活动列表失败", err, nil)
	}

	now := s.now()
	cal := newEventCalendar()
	for i := range events {
		addCalendarEvent(cal, &events[i], now)
	}

	s.logger.Debug("导出活动日历", zap.Int("events", len(events)))
	filename := fmt.Sprintf("events_%s.ics", now.Format("20060102"))
	return bytes.NewBufferString(cal.Serialize()), filename, nil
}

// ExportEvent 导出单个活动
func (s *exportService) ExportEvent(ctx context.Context, eventID int64) (*bytes.Buffer, string, error) {
	e, err := s.repo.Event.GetDetail(ctx, eventID)
	if err != nil {
		return nil, "", storeError(s.logger, "查询活动失败", err, ErrEventNotFound, zap.Int64("id", eventID))
	}

	cal := newEventCalendar()
	addCalendarEvent(cal, e, s.now())

	return bytes.NewBufferString(cal.Serialize()), fmt.Sprintf("event_%d.ics", eventID), nil
}

func newEventCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName(calendarName)
	return cal
}

func addCalendarEvent(cal *ics.Calendar, e *model.EventDetail, stamp time.Time) {
	vevent := cal.AddEvent(eventUID(e.ID))
	vevent.SetDtStampTime(stamp)
	vevent.SetCreatedTime(e.CreatedAt)
	vevent.SetModifiedAt(e.UpdatedAt)
	vevent.SetStartAt(e.StartTime)
	vevent.SetEndAt(e.EndTime)
	vevent.SetSummary(e.Title)

	if e.Location != nil && *e.Location != "" {
		vevent.SetLocation(*e.Location)
	}

	desc := deref(e.Description)
	if e.DepartmentName != nil {
		if desc != "" {
			desc += "\n\n"
		}
		desc += "主办部门：" + *e.DepartmentName
	}
	if desc != "" {
		vevent.SetDescription(desc)
	}

	if e.Status == model.EventStatusCancelled {
		vevent.SetStatus(ics.ObjectStatusCancelled)
	} else {
		vevent.SetStatus(ics.ObjectStatusConfirmed)
	}
}

func eventUID(id int64) string {
	return fmt.Sprintf("event-%d@club-portal", id)
}
