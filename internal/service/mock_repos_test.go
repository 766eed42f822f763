package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"club-portal/backend/internal/model"
	"club-portal/backend/internal/repository"
)

// ── 内存数据库 ──
// 所有 mock repository 共享同一份数据，以便跨模块的联动（如报名需要社员档案）

type memDB struct {
	mu     sync.Mutex
	nextID int64

	users         map[int64]*model.User
	members       map[int64]*model.Member
	departments   map[int64]*model.Department
	announcements map[int64]*model.Announcement
	comments      map[int64]*model.Comment
	events        map[int64]*model.Event
	registrations map[int64]*model.Registration
	files         map[int64]*model.File
	categories    map[int64]*model.FileCategory

	// storeErr 非空时所有读写操作返回该错误，用于模拟数据库故障
	storeErr error
}

func newMemDB() *memDB {
	return &memDB{
		users:         map[int64]*model.User{},
		members:       map[int64]*model.Member{},
		departments:   map[int64]*model.Department{},
		announcements: map[int64]*model.Announcement{},
		comments:      map[int64]*model.Comment{},
		events:        map[int64]*model.Event{},
		registrations: map[int64]*model.Registration{},
		files:         map[int64]*model.File{},
		categories:    map[int64]*model.FileCategory{},
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func fkViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

func (db *memDB) deptExists(id *int64) bool {
	if id == nil {
		return true
	}
	_, ok := db.departments[*id]
	return ok
}

func (db *memDB) username(id *int64) *string {
	if id == nil {
		return nil
	}
	if u, ok := db.users[*id]; ok {
		name := u.Username
		return &name
	}
	return nil
}

func (db *memDB) deptName(id *int64) *string {
	if id == nil {
		return nil
	}
	if d, ok := db.departments[*id]; ok {
		name := d.Name
		return &name
	}
	return nil
}

func newTestRepo() (*repository.Repository, *memDB) {
	db := newMemDB()
	return &repository.Repository{
		User:         &mockUserRepo{db},
		Member:       &mockMemberRepo{db},
		Department:   &mockDeptRepo{db},
		Announcement: &mockAnnouncementRepo{db},
		Comment:      &mockCommentRepo{db},
		Event:        &mockEventRepo{db},
		Registration: &mockRegistrationRepo{db},
		File:         &mockFileRepo{db},
		FileCategory: &mockCategoryRepo{db},
	}, db
}

// ── Mock UserRepository ──

type mockUserRepo struct{ db *memDB }

func (m *mockUserRepo) CreateWithMember(_ context.Context, user *model.User, member *model.Member) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	for _, u := range m.db.users {
		if u.Username == user.Username {
			return uniqueViolation("users_username_key")
		}
	}
	if !m.db.deptExists(member.DepartmentID) {
		return fkViolation()
	}
	user.ID = m.db.id()
	member.ID = m.db.id()
	member.UserID = user.ID
	member.JoinedDate = time.Now().Truncate(24 * time.Hour)
	m.db.users[user.ID] = user
	m.db.members[member.ID] = member
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if u, ok := m.db.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) profile(match func(*model.User) bool) (*model.UserProfile, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	for _, u := range m.db.users {
		if !match(u) {
			continue
		}
		p := &model.UserProfile{
			ID:           u.ID,
			Username:     u.Username,
			Role:         u.Role,
			IsActive:     u.IsActive,
			PasswordHash: u.PasswordHash,
		}
		for _, mem := range m.db.members {
			if mem.UserID == u.ID {
				id, name := mem.ID, mem.Name
				p.MemberID, p.Name, p.Email = &id, &name, mem.Email
				p.DepartmentID, p.Generation = mem.DepartmentID, mem.Generation
			}
		}
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetProfileByUsername(_ context.Context, username string) (*model.UserProfile, error) {
	return m.profile(func(u *model.User) bool { return u.Username == username })
}

func (m *mockUserRepo) GetProfileByID(_ context.Context, id int64) (*model.UserProfile, error) {
	return m.profile(func(u *model.User) bool { return u.ID == id })
}

// ── Mock MemberRepository ──

type mockMemberRepo struct{ db *memDB }

func (m *mockMemberRepo) GetByID(_ context.Context, id int64) (*model.Member, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if mem, ok := m.db.members[id]; ok {
		cp := *mem
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) GetByUserID(_ context.Context, userID int64) (*model.Member, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	for _, mem := range m.db.members {
		if mem.UserID == userID {
			cp := *mem
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) detail(mem *model.Member) model.MemberDetail {
	d := model.MemberDetail{Member: *mem, DepartmentName: m.db.deptName(mem.DepartmentID)}
	if u, ok := m.db.users[mem.UserID]; ok {
		d.Username, d.Role, d.IsActive = u.Username, u.Role, u.IsActive
	}
	return d
}

func (m *mockMemberRepo) GetDetail(_ context.Context, id int64) (*model.MemberDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if mem, ok := m.db.members[id]; ok {
		d := m.detail(mem)
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) List(_ context.Context, f repository.MemberFilter) ([]model.MemberDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	result := []model.MemberDetail{}
	for _, mem := range m.db.members {
		if f.Status != "" && mem.Status != f.Status {
			continue
		}
		if f.DepartmentID != nil && (mem.DepartmentID == nil || *mem.DepartmentID != *f.DepartmentID) {
			continue
		}
		if f.Generation != nil && (mem.Generation == nil || *mem.Generation != *f.Generation) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(mem.Name), strings.ToLower(f.Search)) {
			continue
		}
		result = append(result, m.detail(mem))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockMemberRepo) ListActiveByDepartment(ctx context.Context, departmentID int64) ([]model.MemberDetail, error) {
	return m.List(ctx, repository.MemberFilter{Status: model.MemberStatusActive, DepartmentID: &departmentID})
}

func (m *mockMemberRepo) Update(_ context.Context, member *model.Member) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	if !m.db.deptExists(member.DepartmentID) {
		return fkViolation()
	}
	cp := *member
	m.db.members[member.ID] = &cp
	return nil
}

func (m *mockMemberRepo) Delete(_ context.Context, id int64) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.members[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.db.members, id)
	return nil
}

func (m *mockMemberRepo) Stats(_ context.Context) (*model.MemberStats, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	stats := &model.MemberStats{}
	for _, mem := range m.db.members {
		if mem.Status == model.MemberStatusActive {
			stats.Total++
		}
	}
	return stats, nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct{ db *memDB }

func (m *mockDeptRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if d, ok := m.db.departments[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) ListWithCounts(_ context.Context) ([]model.DepartmentSummary, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.DepartmentSummary{}
	for _, d := range m.db.departments {
		s := model.DepartmentSummary{Department: *d}
		for _, mem := range m.db.members {
			if mem.DepartmentID != nil && *mem.DepartmentID == d.ID && mem.Status == model.MemberStatusActive {
				s.MemberCount++
			}
		}
		for _, f := range m.db.files {
			if f.DepartmentID != nil && *f.DepartmentID == d.ID {
				s.FileCount++
			}
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct{ db *memDB }

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	if !m.db.deptExists(a.DepartmentID) {
		return fkViolation()
	}
	a.ID = m.db.id()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.db.announcements[a.ID] = &cp
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id int64) (*model.Announcement, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if a, ok := m.db.announcements[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) detail(a *model.Announcement) model.AnnouncementDetail {
	d := model.AnnouncementDetail{
		Announcement:   *a,
		AuthorName:     m.db.username(a.AuthorID),
		DepartmentName: m.db.deptName(a.DepartmentID),
	}
	for _, c := range m.db.comments {
		if c.AnnouncementID == a.ID {
			d.CommentCount++
		}
	}
	return d
}

func (m *mockAnnouncementRepo) GetDetail(_ context.Context, id int64) (*model.AnnouncementDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if a, ok := m.db.announcements[id]; ok {
		d := m.detail(a)
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context, departmentID *int64, limit int) ([]model.AnnouncementDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	result := []model.AnnouncementDetail{}
	for _, a := range m.db.announcements {
		if departmentID != nil && a.DepartmentID != nil && *a.DepartmentID != *departmentID {
			continue
		}
		result = append(result, m.detail(a))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsPinned != result[j].IsPinned {
			return result[i].IsPinned
		}
		return result[i].ID > result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	cp := *a
	m.db.announcements[a.ID] = &cp
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id int64) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.announcements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.db.announcements, id)
	for cid, c := range m.db.comments {
		if c.AnnouncementID == id {
			delete(m.db.comments, cid)
		}
	}
	return nil
}

// ── Mock CommentRepository ──

type mockCommentRepo struct{ db *memDB }

func (m *mockCommentRepo) Create(_ context.Context, c *model.Comment) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.announcements[c.AnnouncementID]; !ok {
		return fkViolation()
	}
	c.ID = m.db.id()
	c.CreatedAt = time.Now()
	cp := *c
	m.db.comments[c.ID] = &cp
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if c, ok := m.db.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCommentRepo) ListByAnnouncement(_ context.Context, announcementID int64) ([]model.CommentDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.CommentDetail{}
	for _, c := range m.db.comments {
		if c.AnnouncementID == announcementID {
			result = append(result, model.CommentDetail{Comment: *c, AuthorName: m.db.username(c.AuthorID)})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock EventRepository ──

type mockEventRepo struct{ db *memDB }

func (m *mockEventRepo) Create(_ context.Context, e *model.Event) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	if !m.db.deptExists(e.DepartmentID) {
		return fkViolation()
	}
	e.ID = m.db.id()
	cp := *e
	m.db.events[e.ID] = &cp
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*model.Event, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if e, ok := m.db.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) detail(e *model.Event) model.EventDetail {
	d := model.EventDetail{
		Event:          *e,
		DepartmentName: m.db.deptName(e.DepartmentID),
		CreatedByName:  m.db.username(e.CreatedBy),
	}
	for _, r := range m.db.registrations {
		if r.EventID == e.ID && r.Status == model.RegistrationStatusRegistered {
			d.RegisteredCount++
		}
	}
	return d
}

func (m *mockEventRepo) GetDetail(_ context.Context, id int64) (*model.EventDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if e, ok := m.db.events[id]; ok {
		d := m.detail(e)
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, f repository.EventFilter) ([]model.EventDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.EventDetail{}
	for _, e := range m.db.events {
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Upcoming && !e.StartTime.After(time.Now()) {
			continue
		}
		result = append(result, m.detail(e))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, e *model.Event) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.events[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if e.MaxParticipants != nil {
		var count int64
		for _, r := range m.db.registrations {
			if r.EventID == e.ID && r.Status == model.RegistrationStatusRegistered {
				count++
			}
		}
		if count > int64(*e.MaxParticipants) {
			return repository.ErrCapacityBelowRegistered
		}
	}
	if !m.db.deptExists(e.DepartmentID) {
		return fkViolation()
	}
	cp := *e
	m.db.events[e.ID] = &cp
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id int64) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.db.events, id)
	return nil
}

// ── Mock RegistrationRepository ──
// 整个检查与写入在同一把锁内完成，对应数据库事务中的行锁

type mockRegistrationRepo struct{ db *memDB }

func (m *mockRegistrationRepo) CreateWithinCapacity(_ context.Context, reg *model.Registration) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	event, ok := m.db.events[reg.EventID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	var count int64
	for _, r := range m.db.registrations {
		if r.EventID != reg.EventID {
			continue
		}
		if r.MemberID == reg.MemberID {
			return uniqueViolation("registrations_event_member_key")
		}
		if r.Status == model.RegistrationStatusRegistered {
			count++
		}
	}
	if event.MaxParticipants != nil && count >= int64(*event.MaxParticipants) {
		return repository.ErrCapacityReached
	}
	reg.ID = m.db.id()
	reg.RegisteredAt = time.Now()
	cp := *reg
	m.db.registrations[reg.ID] = &cp
	return nil
}

func (m *mockRegistrationRepo) Delete(_ context.Context, eventID, memberID int64) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for id, r := range m.db.registrations {
		if r.EventID == eventID && r.MemberID == memberID {
			delete(m.db.registrations, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) ListByEvent(_ context.Context, eventID int64) ([]model.RegistrationDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.RegistrationDetail{}
	for _, r := range m.db.registrations {
		if r.EventID != eventID {
			continue
		}
		d := model.RegistrationDetail{Registration: *r}
		if mem, ok := m.db.members[r.MemberID]; ok {
			name := mem.Name
			d.Name, d.Phone, d.Email = &name, mem.Phone, mem.Email
		}
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock FileRepository ──

type mockFileRepo struct{ db *memDB }

func (m *mockFileRepo) Create(_ context.Context, f *model.File) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return m.db.storeErr
	}
	if !m.db.deptExists(f.DepartmentID) {
		return fkViolation()
	}
	if f.CategoryID != nil {
		if _, ok := m.db.categories[*f.CategoryID]; !ok {
			return fkViolation()
		}
	}
	f.ID = m.db.id()
	cp := *f
	m.db.files[f.ID] = &cp
	return nil
}

func (m *mockFileRepo) GetByID(_ context.Context, id int64) (*model.File, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if m.db.storeErr != nil {
		return nil, m.db.storeErr
	}
	if f, ok := m.db.files[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFileRepo) detail(f *model.File) model.FileDetail {
	d := model.FileDetail{
		File:           *f,
		DepartmentName: m.db.deptName(f.DepartmentID),
		UploadedByName: m.db.username(f.UploadedBy),
	}
	if f.CategoryID != nil {
		if c, ok := m.db.categories[*f.CategoryID]; ok {
			name := c.Name
			d.CategoryName = &name
		}
	}
	return d
}

func (m *mockFileRepo) GetDetail(_ context.Context, id int64) (*model.FileDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if f, ok := m.db.files[id]; ok {
		d := m.detail(f)
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFileRepo) List(_ context.Context, filter repository.FileFilter) ([]model.FileDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.FileDetail{}
	for _, f := range m.db.files {
		if filter.Year != nil && f.Year != *filter.Year {
			continue
		}
		if len(filter.Tags) > 0 && !overlaps(f.Tags, filter.Tags) {
			continue
		}
		result = append(result, m.detail(f))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func (m *mockFileRepo) ListRecentByDepartment(_ context.Context, departmentID int64, limit int) ([]model.FileDetail, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.FileDetail{}
	for _, f := range m.db.files {
		if f.DepartmentID != nil && *f.DepartmentID == departmentID {
			result = append(result, m.detail(f))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockFileRepo) Update(_ context.Context, f *model.File) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if !m.db.deptExists(f.DepartmentID) {
		return fkViolation()
	}
	cp := *f
	m.db.files[f.ID] = &cp
	return nil
}

func (m *mockFileRepo) Delete(_ context.Context, id int64) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.files[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.db.files, id)
	return nil
}

func (m *mockFileRepo) Stats(_ context.Context) (*model.FileStats, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	return &model.FileStats{Total: int64(len(m.db.files))}, nil
}

// ── Mock FileCategoryRepository ──

type mockCategoryRepo struct{ db *memDB }

func (m *mockCategoryRepo) Create(_ context.Context, c *model.FileCategory) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, existing := range m.db.categories {
		if existing.Name == c.Name {
			return uniqueViolation("file_categories_name_key")
		}
	}
	c.ID = m.db.id()
	cp := *c
	m.db.categories[c.ID] = &cp
	return nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]model.FileCategory, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	result := []model.FileCategory{}
	for _, c := range m.db.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
