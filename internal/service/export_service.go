package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
	"club-portal/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 导出内容以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportMembers 按列表过滤条件导出社员名册为 Excel
	ExportMembers(ctx context.Context, caller *policy.Identity, req *dto.MemberListRequest) (*bytes.Buffer, string, error)

	// ExportEventCalendar 按活动列表过滤条件导出 iCalendar 订阅文件
	ExportEventCalendar(ctx context.Context, req *dto.EventListRequest) (*bytes.Buffer, string, error)
	// ExportEvent 导出单个活动的 .ics 文件
	ExportEvent(ctx context.Context, eventID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

var memberSheetHeaders = []string{
	"届别", "姓名", "学号", "科系", "年级", "部门", "职位",
	"电话", "电子邮件", "产业", "职务", "专长", "兴趣", "状态", "入社日期",
}

var memberStatusNames = map[string]string{
	model.MemberStatusActive:    "在籍",
	model.MemberStatusInactive:  "停权",
	model.MemberStatusGraduated: "已毕业",
}

// ═══════════════════════════════════════════════════════════
// ExportMembers 导出社员名册
// ═══════════════════════════════════════════════════════════
//
// 输出格式：单个 Sheet「社员名册」，首行冻结为表头，每位社员一行
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportMembers(ctx context.Context, caller *policy.Identity, req *dto.MemberListRequest) (*bytes.Buffer, string, error) {
	if err := policy.Authorize(caller, policy.MemberExport, policy.Target{}); err != nil {
		return nil, "", err
	}

	members, err := s.repo.Member.List(ctx, memberFilter(req))
	if err != nil {
		return nil, "", storeError(s.logger, "查询社员列表失败", err, nil)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "社员名册"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", s.generateFailed(err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", s.generateFailed(err)
	}

	for i, h := range memberSheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(memberSheetHeaders))
	_ = f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	for r, m := range members {
		row := memberRow(&m)
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", s.generateFailed(err)
		}
	}

	_ = f.SetColWidth(sheet, "A", lastCol, 14)
	_ = f.SetColWidth(sheet, "I", "I", 26)
	_ = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", s.generateFailed(err)
	}

	filename := fmt.Sprintf("members_%s.xlsx", s.now().Format("20060102"))
	s.logger.Info("导出社员名册",
		zap.Int64("operator", caller.UserID),
		zap.Int("rows", len(members)),
	)
	return buf, filename, nil
}

func (s *exportService) generateFailed(err error) error {
	s.logger.Error("生成 Excel 失败", zap.Error(err))
	return ErrExportGenerateFail
}

func memberRow(m *model.MemberDetail) []interface{} {
	generation := ""
	if m.Generation != nil {
		generation = fmt.Sprintf("第 %d 届", *m.Generation)
	}
	status := memberStatusNames[m.Status]
	if status == "" {
		status = m.Status
	}
	return []interface{}{
		generation,
		m.Name,
		deref(m.StudentID),
		deref(m.Department),
		deref(m.Grade),
		deref(m.DepartmentName),
		deref(m.Position),
		deref(m.Phone),
		deref(m.Email),
		deref(m.Industry),
		deref(m.JobRole),
		strings.Join(m.Skills, "、"),
		strings.Join(m.Interests, "、"),
		status,
		m.JoinedDate.Format("2006-01-02"),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
