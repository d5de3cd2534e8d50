package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var (
	anonymous = Caller{}
	member    = Caller{UserID: 7, Authenticated: true}
	staff     = Caller{UserID: 1, Authenticated: true, IsStaff: true}
)

// TestAuthorize 权限矩阵逐行验证
func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		caller   Caller
		resource Resource
		action   Action
		ownerID  uint
		wantErr  error
	}{
		// 目录读取对所有人开放
		{"匿名读图书", anonymous, ResourceBook, ActionRead, 0, nil},
		{"匿名读作者", anonymous, ResourceAuthor, ActionRead, 0, nil},
		{"登录用户读图书", member, ResourceBook, ActionRead, 0, nil},

		// 目录写入仅限管理员
		{"匿名写图书", anonymous, ResourceBook, ActionWrite, 0, apperrors.ErrUnauthorized},
		{"普通用户写图书", member, ResourceBook, ActionWrite, 0, apperrors.ErrForbidden},
		{"普通用户写作者", member, ResourceAuthor, ActionWrite, 0, apperrors.ErrForbidden},
		{"管理员写图书", staff, ResourceBook, ActionWrite, 0, nil},
		{"管理员写作者", staff, ResourceAuthor, ActionWrite, 0, nil},

		// 订单创建与列表需要登录
		{"匿名创建订单", anonymous, ResourceOrder, ActionCreate, 0, apperrors.ErrUnauthorized},
		{"登录用户创建订单", member, ResourceOrder, ActionCreate, 0, nil},
		{"匿名查订单列表", anonymous, ResourceOrder, ActionListOwn, 0, apperrors.ErrUnauthorized},
		{"登录用户查订单列表", member, ResourceOrder, ActionListOwn, 0, nil},

		// 订单详情仅本人或管理员
		{"本人查订单详情", member, ResourceOrder, ActionRetrieve, 7, nil},
		{"他人查订单详情", member, ResourceOrder, ActionRetrieve, 8, apperrors.ErrForbidden},
		{"管理员查他人订单", staff, ResourceOrder, ActionRetrieve, 7, nil},
		{"匿名查订单详情", anonymous, ResourceOrder, ActionRetrieve, 7, apperrors.ErrUnauthorized},

		// 状态更新仅限管理员
		{"本人更新订单状态", member, ResourceOrder, ActionUpdateStatus, 7, apperrors.ErrForbidden},
		{"管理员更新订单状态", staff, ResourceOrder, ActionUpdateStatus, 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.resource, tt.action, tt.ownerID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestAuthorizeUnknownAction 表中未声明的操作默认拒绝
func TestAuthorizeUnknownAction(t *testing.T) {
	err := Authorize(staff, ResourceBook, Action("purge"), 0)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
