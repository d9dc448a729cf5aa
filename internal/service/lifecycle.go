// Package service 业务逻辑层
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	loopfsm "github.com/looplab/fsm"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
)

// 审核相关错误
var (
	ErrReasonRequired = errors.New("驳回原因不能为空")
)

// DefaultOfflineReason 管理员未填写时的默认下线原因
const DefaultOfflineReason = "违规下线"

// TransitionError 非法状态迁移错误
type TransitionError struct {
	Action  model.AuditAction
	Current model.HotelStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("动作 %q 不允许从状态 %q 发起", e.Action, e.Current)
}

// events 将 model.Transitions 转换为 looplab/fsm 的事件描述
// 同一动作、同一目标状态的多个来源状态合并为一条
var events = buildEvents()

func buildEvents() []loopfsm.EventDesc {
	type key struct {
		action string
		dst    string
	}
	grouped := make(map[key][]string)
	order := make([]key, 0)

	for _, t := range model.Transitions {
		k := key{action: string(t.Action), dst: string(t.Dst)}
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], string(t.Src))
	}

	out := make([]loopfsm.EventDesc, 0, len(order))
	for _, k := range order {
		out = append(out, loopfsm.EventDesc{
			Name: k.action,
			Src:  grouped[k],
			Dst:  k.dst,
		})
	}
	return out
}

// applyTransition 校验动作在当前状态下是否合法并返回目标状态
// looplab/fsm 内部记录当前状态，因此每次校验新建一个短生命周期实例
func applyTransition(ctx context.Context, current model.HotelStatus, action model.AuditAction) (model.HotelStatus, error) {
	machine := loopfsm.NewFSM(string(current), events, nil)

	if err := machine.Event(ctx, string(action)); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		var noTransition loopfsm.NoTransitionError
		if errors.As(err, &invalidEvent) || errors.As(err, &noTransition) {
			return "", &TransitionError{Action: action, Current: current}
		}
		return "", err
	}

	return model.HotelStatus(machine.Current()), nil
}

// LifecycleService 酒店生命周期服务接口
// 每个操作完成实体更新后追加一条审核日志；两次写入相互独立，无事务包裹
type LifecycleService interface {
	// Submit 商户提交审核，仅草稿和已驳回状态允许
	Submit(ctx context.Context, hotelID, merchantID string) (*model.Hotel, error)
	// Approve 审核通过，仅待审核状态允许，清除驳回原因
	Approve(ctx context.Context, hotelID, operatorID string) (*model.Hotel, error)
	// Reject 审核驳回，仅待审核状态允许，原因必填
	Reject(ctx context.Context, hotelID, operatorID, reason string) (*model.Hotel, error)
	// Offline 下线酒店，任何非下线状态均允许，原因可选
	Offline(ctx context.Context, hotelID, operatorID, reason string) (*model.Hotel, error)
	// Restore 恢复上线，仅下线状态允许
	Restore(ctx context.Context, hotelID, operatorID string) (*model.Hotel, error)
}

// lifecycleService 酒店生命周期服务实现
type lifecycleService struct {
	hotelRepo repository.HotelRepository
	auditRepo repository.AuditRecordRepository
}

// NewLifecycleService 创建酒店生命周期服务
func NewLifecycleService(hotelRepo repository.HotelRepository, auditRepo repository.AuditRecordRepository) LifecycleService {
	return &lifecycleService{hotelRepo: hotelRepo, auditRepo: auditRepo}
}

// Submit 商户提交审核
func (s *lifecycleService) Submit(ctx context.Context, hotelID, merchantID string) (*model.Hotel, error) {
	// 按商户归属加载，不存在与不属于该商户统一按不存在处理
	hotel, err := s.hotelRepo.GetByIDOwned(ctx, hotelID, merchantID)
	if err != nil {
		return nil, err
	}

	next, err := applyTransition(ctx, hotel.Status, model.ActionSubmit)
	if err != nil {
		return nil, err
	}

	prev := hotel.Status
	hotel.Status = next
	// 驳回原因保留到下次审核通过才清除
	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}

	if err := s.appendAudit(ctx, hotel, merchantID, model.ActionSubmit, "", prev); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Approve 审核通过
func (s *lifecycleService) Approve(ctx context.Context, hotelID, operatorID string) (*model.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	next, err := applyTransition(ctx, hotel.Status, model.ActionApprove)
	if err != nil {
		return nil, err
	}

	prev := hotel.Status
	hotel.Status = next
	hotel.RejectReason = ""
	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}

	if err := s.appendAudit(ctx, hotel, operatorID, model.ActionApprove, "", prev); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Reject 审核驳回
func (s *lifecycleService) Reject(ctx context.Context, hotelID, operatorID, reason string) (*model.Hotel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	next, err := applyTransition(ctx, hotel.Status, model.ActionReject)
	if err != nil {
		return nil, err
	}

	prev := hotel.Status
	hotel.Status = next
	hotel.RejectReason = reason
	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}

	if err := s.appendAudit(ctx, hotel, operatorID, model.ActionReject, reason, prev); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Offline 下线酒店
func (s *lifecycleService) Offline(ctx context.Context, hotelID, operatorID, reason string) (*model.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	next, err := applyTransition(ctx, hotel.Status, model.ActionOffline)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultOfflineReason
	}

	prev := hotel.Status
	now := time.Now()
	hotel.Status = next
	hotel.IsDeleted = true
	hotel.OfflineDate = &now
	hotel.OfflineReason = &reason
	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}

	if err := s.appendAudit(ctx, hotel, operatorID, model.ActionOffline, reason, prev); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Restore 恢复上线
func (s *lifecycleService) Restore(ctx context.Context, hotelID, operatorID string) (*model.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	next, err := applyTransition(ctx, hotel.Status, model.ActionRestore)
	if err != nil {
		return nil, err
	}

	prev := hotel.Status
	hotel.Status = next
	hotel.IsDeleted = false
	hotel.OfflineDate = nil
	hotel.OfflineReason = nil
	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, err
	}

	if err := s.appendAudit(ctx, hotel, operatorID, model.ActionRestore, "", prev); err != nil {
		return nil, err
	}
	return hotel, nil
}

// appendAudit 追加审核日志
// 实体更新与日志写入是两次独立的持久化调用，第二次失败时不回滚第一次
func (s *lifecycleService) appendAudit(ctx context.Context, hotel *model.Hotel, operatorID string, action model.AuditAction, reason string, prev model.HotelStatus) error {
	return s.auditRepo.Create(ctx, &model.AuditRecord{
		HotelID:        hotel.ID,
		OperatorID:     operatorID,
		Action:         action,
		Reason:         reason,
		PreviousStatus: prev,
		NewStatus:      hotel.Status,
	})
}
