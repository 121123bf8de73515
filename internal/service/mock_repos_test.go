package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock SeasonRepository ──

type mockSeasonRepo struct {
	seasons map[int64]*model.Season
	nextID  int64
}

func newMockSeasonRepo() *mockSeasonRepo {
	return &mockSeasonRepo{seasons: make(map[int64]*model.Season)}
}

func (m *mockSeasonRepo) Create(_ context.Context, season *model.Season) error {
	for _, s := range m.seasons {
		if s.Year == season.Year {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	season.ID = m.nextID
	m.seasons[season.ID] = season
	return nil
}

func (m *mockSeasonRepo) GetByID(_ context.Context, id int64) (*model.Season, error) {
	if s, ok := m.seasons[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSeasonRepo) GetByYear(_ context.Context, year int) (*model.Season, error) {
	for _, s := range m.seasons {
		if s.Year == year {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSeasonRepo) List(_ context.Context) ([]model.Season, error) {
	result := make([]model.Season, 0, len(m.seasons))
	for _, s := range m.seasons {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	return result, nil
}

func (m *mockSeasonRepo) Update(_ context.Context, season *model.Season) error {
	m.seasons[season.ID] = season
	return nil
}

func (m *mockSeasonRepo) Delete(_ context.Context, id int64) error {
	delete(m.seasons, id)
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[int64]*model.Shift
	nextID int64
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[int64]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	// 模拟 unique_season_shift_number 约束
	for _, s := range m.shifts {
		if s.SeasonID == shift.SeasonID && s.ShiftNumber == shift.ShiftNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	shift.ID = m.nextID
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id int64) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) GetBySeasonAndNumber(_ context.Context, seasonID int64, number int) (*model.Shift, error) {
	for _, s := range m.shifts {
		if s.SeasonID == seasonID && s.ShiftNumber == number {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListBySeason(_ context.Context, seasonID int64) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.SeasonID == seasonID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ShiftNumber < result[j].ShiftNumber })
	return result, nil
}

func (m *mockShiftRepo) ListByIDs(_ context.Context, ids []int64) ([]model.Shift, error) {
	var result []model.Shift
	for _, id := range ids {
		if s, ok := m.shifts[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) CountBySeason(_ context.Context, seasonID int64) (int64, error) {
	var n int64
	for _, s := range m.shifts {
		if s.SeasonID == seasonID {
			n++
		}
	}
	return n, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id int64) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock BoatRepository ──

type mockBoatRepo struct {
	boats  map[int64]*model.Boat
	nextID int64
}

func newMockBoatRepo() *mockBoatRepo {
	return &mockBoatRepo{boats: make(map[int64]*model.Boat)}
}

func (m *mockBoatRepo) Create(_ context.Context, boat *model.Boat) error {
	m.nextID++
	boat.ID = m.nextID
	m.boats[boat.ID] = boat
	return nil
}

func (m *mockBoatRepo) CreateBatch(ctx context.Context, boats []model.Boat) error {
	for i := range boats {
		if err := m.Create(ctx, &boats[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockBoatRepo) GetByID(_ context.Context, id int64) (*model.Boat, error) {
	if b, ok := m.boats[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoatRepo) List(_ context.Context, boatType model.BoatType) ([]model.Boat, error) {
	var result []model.Boat
	for _, b := range m.boats {
		if boatType == "" || b.Type == boatType {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockBoatRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.boats)), nil
}

func (m *mockBoatRepo) Update(_ context.Context, boat *model.Boat) error {
	m.boats[boat.ID] = boat
	return nil
}

func (m *mockBoatRepo) Delete(_ context.Context, id int64) error {
	delete(m.boats, id)
	return nil
}

// ── Mock BoatPartRepository ──

type mockBoatPartRepo struct {
	parts []model.BoatPart
}

func newMockBoatPartRepo() *mockBoatPartRepo {
	return &mockBoatPartRepo{}
}

func (m *mockBoatPartRepo) CreateBatch(_ context.Context, parts []model.BoatPart) error {
	for i := range parts {
		parts[i].ID = int64(len(m.parts) + 1)
		m.parts = append(m.parts, parts[i])
	}
	return nil
}

func (m *mockBoatPartRepo) ListNamesByType(_ context.Context, boatType model.BoatType) ([]string, error) {
	var names []string
	for _, p := range m.parts {
		if p.BoatType == boatType {
			names = append(names, p.PartName)
		}
	}
	return names, nil
}

func (m *mockBoatPartRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.parts)), nil
}

// ── Mock OrderRepository ──

type mockOrderRepo struct {
	orders map[int64]*model.Order
	nextID int64
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[int64]*model.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	m.nextID++
	order.ID = m.nextID
	now := time.Now()
	order.CreatedAt, order.UpdatedAt = now, now
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id int64) (*model.Order, error) {
	if o, ok := m.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// List 支持测试所需的筛选子集：q（标题）、状态、轮次、排序（order_date/title）与分页
func (m *mockOrderRepo) List(_ context.Context, f repository.OrderFilter) ([]model.Order, error) {
	var result []model.Order
	for _, o := range m.orders {
		if f.Q != "" && !strings.Contains(strings.ToLower(o.Title), strings.ToLower(f.Q)) {
			continue
		}
		if f.Status != "" && string(o.Status) != f.Status {
			continue
		}
		if len(f.ShiftIDs) > 0 && !containsID(f.ShiftIDs, o.ShiftID) {
			continue
		}
		result = append(result, *o)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if f.GroupByShift {
			if a.ShiftID != b.ShiftID {
				return a.ShiftID < b.ShiftID
			}
			return a.OrderDate.After(b.OrderDate)
		}
		var less bool
		switch f.SortBy {
		case "title":
			less = a.Title < b.Title
		default:
			if a.OrderDate.Equal(b.OrderDate) {
				less = a.ID < b.ID
			} else {
				less = a.OrderDate.Before(b.OrderDate)
			}
		}
		if f.Desc {
			return !less
		}
		return less
	})

	if f.Limit > 0 {
		if f.Offset >= len(result) {
			return []model.Order{}, nil
		}
		end := f.Offset + f.Limit
		if end > len(result) {
			end = len(result)
		}
		result = result[f.Offset:end]
	}
	return result, nil
}

func (m *mockOrderRepo) ListByShiftIDs(_ context.Context, shiftIDs []int64) ([]model.Order, error) {
	var result []model.Order
	for _, o := range m.orders {
		if containsID(shiftIDs, o.ShiftID) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockOrderRepo) RecentCompleted(_ context.Context, limit int) ([]model.Order, error) {
	var result []model.Order
	for _, o := range m.orders {
		if o.Status == model.StatusCompleted {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockOrderRepo) CountByShift(_ context.Context, shiftID int64) (int64, error) {
	var n int64
	for _, o := range m.orders {
		if o.ShiftID == shiftID {
			n++
		}
	}
	return n, nil
}

func (m *mockOrderRepo) CountByStatus(_ context.Context, status model.Status) (int64, error) {
	var n int64
	for _, o := range m.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockOrderRepo) Update(_ context.Context, order *model.Order) error {
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id int64) error {
	delete(m.orders, id)
	return nil
}

// ── Mock WorkRepository ──

type mockWorkRepo struct {
	works  map[int64]*model.Work
	users  *mockUserRepo
	nextID int64
}

func newMockWorkRepo(users *mockUserRepo) *mockWorkRepo {
	return &mockWorkRepo{works: make(map[int64]*model.Work), users: users}
}

// withUser 模拟 Preload("User")
func (m *mockWorkRepo) withUser(w model.Work) model.Work {
	if u, ok := m.users.users[w.UserID]; ok {
		w.User = u
	}
	return w
}

func (m *mockWorkRepo) Create(_ context.Context, work *model.Work) error {
	m.nextID++
	work.ID = m.nextID
	now := time.Now()
	work.CreatedAt, work.UpdatedAt = now, now
	m.works[work.ID] = work
	return nil
}

func (m *mockWorkRepo) GetByID(_ context.Context, id int64) (*model.Work, error) {
	if w, ok := m.works[id]; ok {
		cp := m.withUser(*w)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkRepo) List(_ context.Context, f repository.WorkFilter) ([]model.Work, error) {
	var result []model.Work
	for _, w := range m.works {
		if f.Category != "" && string(w.Category) != f.Category {
			continue
		}
		if f.Status != "" && string(w.Status) != f.Status {
			continue
		}
		if len(f.ShiftIDs) > 0 && !containsID(f.ShiftIDs, w.ShiftID) {
			continue
		}
		result = append(result, m.withUser(*w))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockWorkRepo) ListByShiftIDs(_ context.Context, shiftIDs []int64) ([]model.Work, error) {
	var result []model.Work
	for _, w := range m.works {
		if containsID(shiftIDs, w.ShiftID) {
			result = append(result, m.withUser(*w))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockWorkRepo) RecentCompleted(_ context.Context, limit int) ([]model.Work, error) {
	var result []model.Work
	for _, w := range m.works {
		if w.Status == model.StatusCompleted {
			result = append(result, m.withUser(*w))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockWorkRepo) CountByShift(_ context.Context, shiftID int64) (int64, error) {
	var n int64
	for _, w := range m.works {
		if w.ShiftID == shiftID {
			n++
		}
	}
	return n, nil
}

func (m *mockWorkRepo) CountByStatus(_ context.Context, status model.Status) (int64, error) {
	var n int64
	for _, w := range m.works {
		if w.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockWorkRepo) Update(_ context.Context, work *model.Work) error {
	cp := *work
	cp.User = nil
	m.works[work.ID] = &cp
	return nil
}

func (m *mockWorkRepo) Delete(_ context.Context, id int64) error {
	delete(m.works, id)
	return nil
}

// ── Mock ProblemRepository ──

type mockProblemRepo struct {
	problems map[int64]*model.BoatProblem
	boats    *mockBoatRepo
	nextID   int64
}

func newMockProblemRepo(boats *mockBoatRepo) *mockProblemRepo {
	return &mockProblemRepo{problems: make(map[int64]*model.BoatProblem), boats: boats}
}

// withBoat 模拟 Preload("Boat")
func (m *mockProblemRepo) withBoat(p model.BoatProblem) model.BoatProblem {
	if b, ok := m.boats.boats[p.BoatID]; ok {
		p.Boat = b
	}
	return p
}

func (m *mockProblemRepo) Create(_ context.Context, problem *model.BoatProblem) error {
	m.nextID++
	problem.ID = m.nextID
	now := time.Now()
	problem.CreatedAt, problem.UpdatedAt = now, now
	cp := *problem
	m.problems[problem.ID] = &cp
	return nil
}

func (m *mockProblemRepo) GetByID(_ context.Context, id int64) (*model.BoatProblem, error) {
	if p, ok := m.problems[id]; ok {
		cp := m.withBoat(*p)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProblemRepo) List(_ context.Context, f repository.ProblemFilter) ([]model.BoatProblem, error) {
	var result []model.BoatProblem
	for _, p := range m.problems {
		if f.BoatID > 0 && p.BoatID != f.BoatID {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.ShiftID > 0 && p.ShiftID != f.ShiftID {
			continue
		}
		result = append(result, m.withBoat(*p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProblemRepo) ListByShiftIDs(_ context.Context, shiftIDs []int64) ([]model.BoatProblem, error) {
	var result []model.BoatProblem
	for _, p := range m.problems {
		if containsID(shiftIDs, p.ShiftID) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProblemRepo) RecentOpen(_ context.Context, limit int) ([]model.BoatProblem, error) {
	var result []model.BoatProblem
	for _, p := range m.problems {
		if p.Status == model.ProblemOpen {
			result = append(result, m.withBoat(*p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ReportedDate.After(result[j].ReportedDate) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockProblemRepo) CountByShift(_ context.Context, shiftID int64) (int64, error) {
	var n int64
	for _, p := range m.problems {
		if p.ShiftID == shiftID {
			n++
		}
	}
	return n, nil
}

func (m *mockProblemRepo) CountByBoat(_ context.Context, boatID int64) (int64, error) {
	var n int64
	for _, p := range m.problems {
		if p.BoatID == boatID {
			n++
		}
	}
	return n, nil
}

func (m *mockProblemRepo) CountByStatus(_ context.Context, status model.ProblemStatus) (int64, error) {
	var n int64
	for _, p := range m.problems {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockProblemRepo) Update(_ context.Context, problem *model.BoatProblem) error {
	cp := *problem
	cp.Boat = nil
	m.problems[problem.ID] = &cp
	return nil
}

func (m *mockProblemRepo) Delete(_ context.Context, id int64) error {
	delete(m.problems, id)
	return nil
}

// ── 测试辅助 ──

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// mockRepos 便于测试直接操作各 mock
type mockRepos struct {
	users    *mockUserRepo
	seasons  *mockSeasonRepo
	shifts   *mockShiftRepo
	boats    *mockBoatRepo
	parts    *mockBoatPartRepo
	orders   *mockOrderRepo
	works    *mockWorkRepo
	problems *mockProblemRepo
}

// newMockRepository 创建未绑定数据库的 Repository 聚合
func newMockRepository() (*repository.Repository, *mockRepos) {
	users := newMockUserRepo()
	boats := newMockBoatRepo()
	m := &mockRepos{
		users:    users,
		seasons:  newMockSeasonRepo(),
		shifts:   newMockShiftRepo(),
		boats:    boats,
		parts:    newMockBoatPartRepo(),
		orders:   newMockOrderRepo(),
		works:    newMockWorkRepo(users),
		problems: newMockProblemRepo(boats),
	}
	repo := &repository.Repository{
		User:     m.users,
		Season:   m.seasons,
		Shift:    m.shifts,
		Boat:     m.boats,
		BoatPart: m.parts,
		Order:    m.orders,
		Work:     m.works,
		Problem:  m.problems,
	}
	return repo, m
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
