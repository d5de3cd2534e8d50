// Package policy 访问控制
//
// 权限矩阵：
//
//	资源          匿名    登录用户        本人      管理员
//	图书/作者读    允许    允许           允许      允许
//	图书/作者写    拒绝    拒绝           -         允许
//	订单创建/列表  拒绝    允许(仅本人)    允许      允许
//	订单查询       拒绝    拒绝           允许      允许
//	订单状态更新   拒绝    拒绝           拒绝      允许
//
// 设计说明：规则集中在一张静态表中，由唯一的Authorize函数求值，
// 接口层不再散落各自的权限判断
package policy

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Resource 受控资源类型
type Resource string

const (
	ResourceBook   Resource = "book"
	ResourceAuthor Resource = "author"
	ResourceOrder  Resource = "order"
)

// Action 资源上的操作
type Action string

const (
	ActionRead         Action = "read"          // 读取(列表/详情)
	ActionWrite        Action = "write"         // 创建/修改/删除
	ActionCreate       Action = "create"        // 订单创建
	ActionListOwn      Action = "list_own"      // 订单列表(隐式限定本人)
	ActionRetrieve     Action = "retrieve"      // 订单详情
	ActionUpdateStatus Action = "update_status" // 订单状态更新
)

// Caller 调用方身份
// 由认证中间件从Token解析后构建；匿名请求Authenticated为false
type Caller struct {
	UserID        uint
	Authenticated bool
	IsStaff       bool
}

// rule 单条授权规则
type rule struct {
	allowAnonymous bool // 匿名可访问
	allowAnyUser   bool // 任意登录用户可访问
	allowOwner     bool // 资源归属者可访问
	allowStaff     bool // 管理员可访问
}

// table 静态权限表（资源 × 操作 → 规则）
var table = map[Resource]map[Action]rule{
	ResourceBook: {
		ActionRead:  {allowAnonymous: true, allowAnyUser: true, allowOwner: true, allowStaff: true},
		ActionWrite: {allowStaff: true},
	},
	ResourceAuthor: {
		ActionRead:  {allowAnonymous: true, allowAnyUser: true, allowOwner: true, allowStaff: true},
		ActionWrite: {allowStaff: true},
	},
	ResourceOrder: {
		ActionCreate:       {allowAnyUser: true, allowStaff: true},
		ActionListOwn:      {allowAnyUser: true, allowStaff: true},
		ActionRetrieve:     {allowOwner: true, allowStaff: true},
		ActionUpdateStatus: {allowStaff: true},
	},
}

// Authorize 授权判定
// ownerID是资源归属者的用户ID，无归属概念的操作传0。
// 返回值：nil允许；ErrUnauthorized缺少身份；ErrForbidden身份不足
func Authorize(caller Caller, resource Resource, action Action, ownerID uint) error {
	r, ok := table[resource][action]
	if !ok {
		// 表中未声明的操作一律拒绝
		return apperrors.ErrForbidden
	}

	if r.allowAnonymous {
		return nil
	}

	if !caller.Authenticated {
		return apperrors.ErrUnauthorized
	}

	if caller.IsStaff && r.allowStaff {
		return nil
	}

	if r.allowAnyUser {
		return nil
	}

	if r.allowOwner && ownerID != 0 && caller.UserID == ownerID {
		return nil
	}

	return apperrors.ErrForbidden
}
