package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// WorkService 维护工作业务接口
type WorkService interface {
	Create(ctx context.Context, req *dto.CreateWorkRequest, actor Actor) (*dto.WorkResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.WorkResponse, error)
	List(ctx context.Context, query *dto.WorkListQuery) ([]dto.WorkResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateWorkRequest, actor Actor) (*dto.WorkResponse, error)
	Delete(ctx context.Context, id int64, actor Actor) error
}

type workService struct {
	repo   *repository.Repository
	policy Policy
	logger *zap.Logger
}

// NewWorkService 创建 WorkService 实例
func NewWorkService(repo *repository.Repository, policy Policy, logger *zap.Logger) WorkService {
	return &workService{repo: repo, policy: policy, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *workService) Create(ctx context.Context, req *dto.CreateWorkRequest, actor Actor) (*dto.WorkResponse, error) {
	workDate, err := parseDate(req.WorkDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Shift.GetByID(ctx, req.ShiftID); err != nil {
		if isNotFound(err) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询轮次失败", zap.Int64("shift_id", req.ShiftID), zap.Error(err))
		return nil, err
	}

	work := &model.Work{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		WorkDate:    workDate,
		UserID:      actor.ID,
		ShiftID:     req.ShiftID,
	}
	if work.Status == "" {
		work.Status = model.StatusCompleted
	}

	if err := s.repo.Work.Create(ctx, work); err != nil {
		s.logger.Error("创建维护工作失败", zap.Int64("shift_id", req.ShiftID), zap.Error(err))
		return nil, err
	}
	work.User = &model.User{ID: actor.ID, Username: actor.Username}
	return toWorkResponse(work), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *workService) GetByID(ctx context.Context, id int64) (*dto.WorkResponse, error) {
	work, err := s.repo.Work.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrWorkNotFound
		}
		s.logger.Error("查询维护工作失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toWorkResponse(work), nil
}

// ────────────────────── List ──────────────────────

func (s *workService) List(ctx context.Context, query *dto.WorkListQuery) ([]dto.WorkResponse, error) {
	filter, err := buildWorkFilter(query)
	if err != nil {
		return nil, err
	}
	offset, limit := query.Window()
	filter.Window = repository.Window{Offset: offset, Limit: limit}

	works, err := s.repo.Work.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出维护工作失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.WorkResponse, 0, len(works))
	for i := range works {
		result = append(result, *toWorkResponse(&works[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *workService) Update(ctx context.Context, id int64, req *dto.UpdateWorkRequest, actor Actor) (*dto.WorkResponse, error) {
	work, err := s.repo.Work.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrWorkNotFound
		}
		s.logger.Error("查询维护工作失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.policy.Authorize(actor.ID, work.UserID); err != nil {
		return nil, err
	}

	patchString(&work.Title, req.Title)
	patchOptionalString(&work.Description, req.Description)
	if req.Category != nil && *req.Category != "" {
		work.Category = *req.Category
	}
	if req.Status != nil && *req.Status != "" {
		work.Status = *req.Status
	}
	if err := patchDate(&work.WorkDate, req.WorkDate); err != nil {
		return nil, err
	}
	if req.ShiftID != nil && *req.ShiftID > 0 && *req.ShiftID != work.ShiftID {
		if _, err := s.repo.Shift.GetByID(ctx, *req.ShiftID); err != nil {
			return nil, notFoundAs(err, ErrShiftNotFound)
		}
		work.ShiftID = *req.ShiftID
	}
	if req.UserID != nil {
		if *req.UserID <= 0 {
			return nil, ErrInvalidUserID
		}
		if *req.UserID != work.UserID {
			user, err := s.repo.User.GetByID(ctx, *req.UserID)
			if err != nil {
				return nil, notFoundAs(err, ErrUserNotFound)
			}
			work.UserID = user.ID
			work.User = user
		}
	}

	if err := s.repo.Work.Update(ctx, work); err != nil {
		s.logger.Error("更新维护工作失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toWorkResponse(work), nil
}

// ────────────────────── Delete ──────────────────────

func (s *workService) Delete(ctx context.Context, id int64, actor Actor) error {
	work, err := s.repo.Work.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrWorkNotFound
		}
		s.logger.Error("查询维护工作失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if err := s.policy.Authorize(actor.ID, work.UserID); err != nil {
		return err
	}

	if err := s.repo.Work.Delete(ctx, id); err != nil {
		s.logger.Error("删除维护工作失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// buildWorkFilter 将列表查询参数转换为仓储筛选条件（不含分页）
func buildWorkFilter(query *dto.WorkListQuery) (repository.WorkFilter, error) {
	filter := repository.WorkFilter{
		Q:        strings.TrimSpace(query.Q),
		Category: query.Category,
		Status:   query.Status,
		SortBy:   query.SortBy,
		Desc:     query.Desc(),
	}

	var err error
	if filter.DateFrom, err = parseOptionalDate(query.DateFrom); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseOptionalDate(query.DateTo); err != nil {
		return filter, err
	}
	if filter.ShiftIDs, err = resolveShiftIDs(query.ShiftID, query.ShiftIDs); err != nil {
		return filter, err
	}
	return filter, nil
}

// toWorkResponse created_by 取自关联用户的用户名
func toWorkResponse(work *model.Work) *dto.WorkResponse {
	resp := &dto.WorkResponse{
		ID:          work.ID,
		Title:       work.Title,
		Description: work.Description,
		Category:    work.Category,
		Status:      work.Status,
		WorkDate:    formatDate(work.WorkDate),
		UserID:      work.UserID,
		ShiftID:     work.ShiftID,
		CreatedAt:   formatTime(work.CreatedAt),
		UpdatedAt:   formatTime(work.UpdatedAt),
	}
	if work.User != nil {
		name := work.User.Username
		resp.CreatedBy = &name
	}
	return resp
}
