package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/policy"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
// 订单创建后明细与金额不可变,唯一允许的变更是状态流转,
// 因此整单替换(PUT)在结构上不被允许,固定返回405
type OrderHandler struct {
	createOrderUseCase       *apporder.CreateOrderUseCase
	getOrderUseCase          *apporder.GetOrderUseCase
	listOrdersUseCase        *apporder.ListOrdersUseCase
	updateOrderStatusUseCase *apporder.UpdateOrderStatusUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrderUseCase *apporder.CreateOrderUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	updateOrderStatusUseCase *apporder.UpdateOrderStatusUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase:       createOrderUseCase,
		getOrderUseCase:          getOrderUseCase,
		listOrdersUseCase:        listOrdersUseCase,
		updateOrderStatusUseCase: updateOrderStatusUseCase,
	}
}

// CreateOrder 创建订单
// @Summary      创建订单
// @Description  锁定库存、按当前价格生成快照、扣减库存,整个流程在一个事务内
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      200 {object} response.Response{data=apporder.OrderDetail}
// @Failure      400 {object} response.Response "库存不足/参数校验失败"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceOrder, policy.ActionCreate, 0); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	items := make([]apporder.CreateOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = apporder.CreateOrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}

	result, err := h.createOrderUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:  middleware.MustGetUserID(c),
		Address: req.Address,
		Items:   items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOrders 订单列表
// @Summary      订单列表
// @Description  普通用户仅本人订单,管理员全部订单;每页固定10条
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response{data=apporder.ListOrdersResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), req.Page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  仅订单归属者或管理员可查看
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderDetail}
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非本人订单"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ReplaceOrder 整单替换(不支持)
// @Summary      整单替换(固定405)
// @Description  订单创建后明细与金额不可变,只允许通过状态接口推进状态
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Failure      405 {object} response.Response "不支持此操作"
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) ReplaceOrder(c *gin.Context) {
	response.Error(c, apperrors.ErrMethodNotSupported)
}

// UpdateOrderStatus 更新订单状态
// @Summary      更新订单状态
// @Description  仅管理员;状态沿created→paid→sent→delivered单向推进
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=apporder.OrderDetail}
// @Failure      400 {object} response.Response "非法的状态转换"
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateOrderStatusUseCase.Execute(c.Request.Context(), middleware.GetCaller(c), apporder.UpdateOrderStatusRequest{
		OrderID: id,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
