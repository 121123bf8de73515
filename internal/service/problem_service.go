package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// ProblemService 船只故障业务接口
type ProblemService interface {
	Create(ctx context.Context, req *dto.CreateProblemRequest, actor Actor) (*dto.ProblemResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProblemResponse, error)
	List(ctx context.Context, query *dto.ProblemListQuery) ([]dto.ProblemResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProblemRequest, actor Actor) (*dto.ProblemResponse, error)
	Delete(ctx context.Context, id int64, actor Actor) error
	// ToggleStatus open <-> closed，关闭时记录当天为解决日期
	ToggleStatus(ctx context.Context, id int64, actor Actor) (*dto.ToggleProblemResponse, error)
}

type problemService struct {
	repo   *repository.Repository
	policy Policy
	logger *zap.Logger
	now    func() time.Time
}

// NewProblemService 创建 ProblemService 实例
func NewProblemService(repo *repository.Repository, policy Policy, logger *zap.Logger) ProblemService {
	return &problemService{repo: repo, policy: policy, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *problemService) Create(ctx context.Context, req *dto.CreateProblemRequest, actor Actor) (*dto.ProblemResponse, error) {
	boat, err := s.repo.Boat.GetByID(ctx, req.BoatID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBoatNotFound
		}
		s.logger.Error("查询船只失败", zap.Int64("boat_id", req.BoatID), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Shift.GetByID(ctx, req.ShiftID); err != nil {
		if isNotFound(err) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询轮次失败", zap.Int64("shift_id", req.ShiftID), zap.Error(err))
		return nil, err
	}

	reportedDate := today(s.now())
	if req.ReportedDate != "" {
		if reportedDate, err = parseDate(req.ReportedDate); err != nil {
			return nil, err
		}
	}

	problem := &model.BoatProblem{
		BoatID:       req.BoatID,
		Description:  req.Description,
		PartAffected: req.PartAffected,
		Status:       req.Status,
		ReportedBy:   actor.ID,
		ReportedDate: reportedDate,
		ShiftID:      req.ShiftID,
	}
	if problem.Status == "" {
		problem.Status = model.ProblemOpen
	}
	if problem.Status == model.ProblemClosed {
		resolved := reportedDate
		problem.ResolvedDate = &resolved
	}

	if err := s.repo.Problem.Create(ctx, problem); err != nil {
		s.logger.Error("创建故障失败", zap.Int64("boat_id", req.BoatID), zap.Error(err))
		return nil, err
	}
	problem.Boat = boat
	return toProblemResponse(problem), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *problemService) GetByID(ctx context.Context, id int64) (*dto.ProblemResponse, error) {
	problem, err := s.repo.Problem.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProblemNotFound
		}
		s.logger.Error("查询故障失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toProblemResponse(problem), nil
}

// ────────────────────── List ──────────────────────

func (s *problemService) List(ctx context.Context, query *dto.ProblemListQuery) ([]dto.ProblemResponse, error) {
	problems, err := s.repo.Problem.List(ctx, repository.ProblemFilter{
		BoatID:  query.BoatID,
		Status:  query.Status,
		ShiftID: query.ShiftID,
	})
	if err != nil {
		s.logger.Error("列出故障失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProblemResponse, 0, len(problems))
	for i := range problems {
		result = append(result, *toProblemResponse(&problems[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *problemService) Update(ctx context.Context, id int64, req *dto.UpdateProblemRequest, actor Actor) (*dto.ProblemResponse, error) {
	problem, err := s.repo.Problem.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProblemNotFound
		}
		s.logger.Error("查询故障失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.policy.Authorize(actor.ID, problem.ReportedBy); err != nil {
		return nil, err
	}

	patchString(&problem.Description, req.Description)
	patchOptionalString(&problem.PartAffected, req.PartAffected)
	if err := patchDate(&problem.ReportedDate, req.ReportedDate); err != nil {
		return nil, err
	}
	if req.ReportedBy != nil && *req.ReportedBy > 0 {
		problem.ReportedBy = *req.ReportedBy
	}
	if req.Status != nil && *req.Status != "" && *req.Status != problem.Status {
		s.setStatus(problem, *req.Status)
	}
	if req.ResolvedDate != nil && *req.ResolvedDate != "" {
		resolved, err := parseDate(*req.ResolvedDate)
		if err != nil {
			return nil, err
		}
		problem.ResolvedDate = &resolved
	}

	if err := s.repo.Problem.Update(ctx, problem); err != nil {
		s.logger.Error("更新故障失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toProblemResponse(problem), nil
}

// ────────────────────── Delete ──────────────────────

func (s *problemService) Delete(ctx context.Context, id int64, actor Actor) error {
	problem, err := s.repo.Problem.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrProblemNotFound
		}
		s.logger.Error("查询故障失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if err := s.policy.Authorize(actor.ID, problem.ReportedBy); err != nil {
		return err
	}

	if err := s.repo.Problem.Delete(ctx, id); err != nil {
		s.logger.Error("删除故障失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ToggleStatus ──────────────────────

func (s *problemService) ToggleStatus(ctx context.Context, id int64, actor Actor) (*dto.ToggleProblemResponse, error) {
	problem, err := s.repo.Problem.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProblemNotFound
		}
		s.logger.Error("查询故障失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.policy.Authorize(actor.ID, problem.ReportedBy); err != nil {
		return nil, err
	}

	next := model.ProblemClosed
	if problem.Status == model.ProblemClosed {
		next = model.ProblemOpen
	}
	s.setStatus(problem, next)

	if err := s.repo.Problem.Update(ctx, problem); err != nil {
		s.logger.Error("切换故障状态失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.ToggleProblemResponse{
		Status:       problem.Status,
		ResolvedDate: formatOptionalDate(problem.ResolvedDate),
	}, nil
}

// setStatus 关闭时记录解决日期，重新打开时清空
func (s *problemService) setStatus(problem *model.BoatProblem, status model.ProblemStatus) {
	problem.Status = status
	if status == model.ProblemClosed {
		resolved := today(s.now())
		problem.ResolvedDate = &resolved
	} else {
		problem.ResolvedDate = nil
	}
}

func toProblemResponse(problem *model.BoatProblem) *dto.ProblemResponse {
	resp := &dto.ProblemResponse{
		ID:           problem.ID,
		BoatID:       problem.BoatID,
		Description:  problem.Description,
		PartAffected: problem.PartAffected,
		Status:       problem.Status,
		ReportedBy:   problem.ReportedBy,
		ReportedDate: formatDate(problem.ReportedDate),
		ResolvedDate: formatOptionalDate(problem.ResolvedDate),
		ShiftID:      problem.ShiftID,
		CreatedAt:    formatTime(problem.CreatedAt),
		UpdatedAt:    formatTime(problem.UpdatedAt),
	}
	if problem.Boat != nil {
		name, boatType := problem.Boat.Name, problem.Boat.Type
		resp.BoatName = &name
		resp.BoatType = &boatType
	}
	return resp
}
