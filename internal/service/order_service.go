package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/polidanilo/LNI/internal/dto"
	"github.com/polidanilo/LNI/internal/model"
	"github.com/polidanilo/LNI/internal/repository"
)

// OrderService 采购单业务接口
type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest, actor Actor) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error)
	List(ctx context.Context, query *dto.OrderListQuery) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateOrderRequest, actor Actor) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id int64, actor Actor) error
	ImportOrders(ctx context.Context, rows []ImportOrderRow, actor Actor) (*dto.ImportResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	policy Policy
	logger *zap.Logger
}

// NewOrderService 创建 OrderService 实例
func NewOrderService(repo *repository.Repository, policy Policy, logger *zap.Logger) OrderService {
	return &orderService{repo: repo, policy: policy, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest, actor Actor) (*dto.OrderResponse, error) {
	if req.Amount.IsNegative() {
		return nil, ErrAmountNegative
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		return nil, err
	}
	if err := s.ensureShift(ctx, req.ShiftID); err != nil {
		return nil, err
	}

	order := &model.Order{
		Title:       req.Title,
		Description: req.Description,
		Notes:       req.Notes,
		Amount:      req.Amount.Round(2),
		Category:    req.Category,
		Status:      req.Status,
		OrderDate:   orderDate,
		UserID:      actor.ID,
		ShiftID:     req.ShiftID,
	}
	if order.Status == "" {
		order.Status = model.StatusPending
	}
	// 署名默认取当前用户名
	createdBy := actor.Username
	if req.CreatedBy != nil && strings.TrimSpace(*req.CreatedBy) != "" {
		createdBy = *req.CreatedBy
	}
	order.CreatedBy = &createdBy

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.logger.Error("创建采购单失败", zap.Int64("shift_id", req.ShiftID), zap.Error(err))
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *orderService) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询采购单失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ────────────────────── List ──────────────────────

func (s *orderService) List(ctx context.Context, query *dto.OrderListQuery) ([]dto.OrderResponse, error) {
	filter, err := buildOrderFilter(query)
	if err != nil {
		return nil, err
	}
	offset, limit := query.Window()
	filter.Window = repository.Window{Offset: offset, Limit: limit}

	orders, err := s.repo.Order.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出采购单失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *toOrderResponse(&orders[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *orderService) Update(ctx context.Context, id int64, req *dto.UpdateOrderRequest, actor Actor) (*dto.OrderResponse, error) {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询采购单失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.policy.Authorize(actor.ID, order.UserID); err != nil {
		return nil, err
	}

	patchString(&order.Title, req.Title)
	patchOptionalString(&order.Description, req.Description)
	patchOptionalString(&order.Notes, req.Notes)
	patchOptionalString(&order.CreatedBy, req.CreatedBy)
	patchString(&order.Category, req.Category)
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, ErrAmountNegative
		}
		order.Amount = req.Amount.Round(2)
	}
	if req.Status != nil && *req.Status != "" {
		order.Status = *req.Status
	}
	if err := patchDate(&order.OrderDate, req.OrderDate); err != nil {
		return nil, err
	}
	if req.ShiftID != nil && *req.ShiftID > 0 && *req.ShiftID != order.ShiftID {
		if err := s.ensureShift(ctx, *req.ShiftID); err != nil {
			return nil, err
		}
		order.ShiftID = *req.ShiftID
	}
	if req.UserID != nil && *req.UserID > 0 {
		order.UserID = *req.UserID
	}

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.logger.Error("更新采购单失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ────────────────────── Delete ──────────────────────

func (s *orderService) Delete(ctx context.Context, id int64, actor Actor) error {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrOrderNotFound
		}
		s.logger.Error("查询采购单失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if err := s.policy.Authorize(actor.ID, order.UserID); err != nil {
		return err
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		s.logger.Error("删除采购单失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *orderService) ensureShift(ctx context.Context, shiftID int64) error {
	if _, err := s.repo.Shift.GetByID(ctx, shiftID); err != nil {
		if isNotFound(err) {
			return ErrShiftNotFound
		}
		s.logger.Error("查询轮次失败", zap.Int64("shift_id", shiftID), zap.Error(err))
		return err
	}
	return nil
}

// buildOrderFilter 将列表查询参数转换为仓储筛选条件（不含分页）
func buildOrderFilter(query *dto.OrderListQuery) (repository.OrderFilter, error) {
	filter := repository.OrderFilter{
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
	if query.AmountMin != nil {
		v := decimal.NewFromFloat(*query.AmountMin)
		filter.AmountMin = &v
	}
	if query.AmountMax != nil {
		v := decimal.NewFromFloat(*query.AmountMax)
		filter.AmountMax = &v
	}
	return filter, nil
}

func toOrderResponse(order *model.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          order.ID,
		Title:       order.Title,
		Description: order.Description,
		Notes:       order.Notes,
		CreatedBy:   order.CreatedBy,
		Amount:      order.Amount.InexactFloat64(),
		Category:    order.Category,
		Status:      order.Status,
		OrderDate:   formatDate(order.OrderDate),
		UserID:      order.UserID,
		ShiftID:     order.ShiftID,
		CreatedAt:   formatTime(order.CreatedAt),
		UpdatedAt:   formatTime(order.UpdatedAt),
	}
}
