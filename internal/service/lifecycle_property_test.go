package service

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/zcyneiya/hotel-backend/internal/model"
)

// allowed 判断 (状态, 动作) 组合是否在迁移表内
func allowed(status model.HotelStatus, action model.AuditAction) bool {
	for _, t := range model.Transitions {
		if t.Src == status && t.Action == action {
			return true
		}
	}
	return false
}

// dispatch 按动作调用对应的生命周期操作
func dispatch(ctx context.Context, svc LifecycleService, hotelID, operatorID string, action model.AuditAction) error {
	var err error
	switch action {
	case model.ActionSubmit:
		_, err = svc.Submit(ctx, hotelID, operatorID)
	case model.ActionApprove:
		_, err = svc.Approve(ctx, hotelID, operatorID)
	case model.ActionReject:
		_, err = svc.Reject(ctx, hotelID, operatorID, "属性测试驳回原因")
	case model.ActionOffline:
		_, err = svc.Offline(ctx, hotelID, operatorID, "属性测试下线原因")
	case model.ActionRestore:
		_, err = svc.Restore(ctx, hotelID, operatorID)
	}
	return err
}

// *For any* (状态, 动作) 组合：表内组合迁移到表中声明的目标状态并追加一条日志，
// 表外组合返回 TransitionError 且实体和日志均不变
func TestProperty_TransitionTableIsExhaustive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	statusGen := gen.OneConstOf(
		model.HotelStatusDraft,
		model.HotelStatusPending,
		model.HotelStatusPublished,
		model.HotelStatusRejected,
		model.HotelStatusOffline,
	)
	actionGen := gen.OneConstOf(
		model.ActionSubmit,
		model.ActionApprove,
		model.ActionReject,
		model.ActionOffline,
		model.ActionRestore,
	)

	properties.Property("迁移表完备性", prop.ForAll(
		func(status model.HotelStatus, action model.AuditAction) bool {
			hotelRepo := newMockHotelRepository()
			auditRepo := newMockAuditRecordRepository()
			svc := NewLifecycleService(hotelRepo, auditRepo)
			ctx := context.Background()

			hotel := newTestHotel(hotelRepo, "merchant-prop", status)

			err := dispatch(ctx, svc, hotel.ID, "merchant-prop", action)

			if allowed(status, action) {
				if err != nil {
					t.Logf("表内组合 (%s, %s) 返回错误: %v", status, action, err)
					return false
				}
				var expected model.HotelStatus
				for _, tr := range model.Transitions {
					if tr.Src == status && tr.Action == action {
						expected = tr.Dst
					}
				}
				if hotel.Status != expected {
					t.Logf("(%s, %s) 期望迁移到 %s，实际 %s", status, action, expected, hotel.Status)
					return false
				}
				return len(auditRepo.records) == 1
			}

			var transitionErr *TransitionError
			if !errors.As(err, &transitionErr) {
				t.Logf("表外组合 (%s, %s) 期望 TransitionError，实际 %v", status, action, err)
				return false
			}
			if hotel.Status != status {
				t.Logf("表外组合 (%s, %s) 改变了状态: %s", status, action, hotel.Status)
				return false
			}
			return len(auditRepo.records) == 0
		},
		statusGen,
		actionGen,
	))

	properties.TestingRun(t)
}
