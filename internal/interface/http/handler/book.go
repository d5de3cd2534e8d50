package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/policy"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
// 权限规则:读取对所有人开放,写入仅限管理员(权限表集中判定)
type BookHandler struct {
	publishBookUseCase *appbook.PublishBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	getBookUseCase     *appbook.GetBookUseCase
	updateBookUseCase  *appbook.UpdateBookUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishBookUseCase *appbook.PublishBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		publishBookUseCase: publishBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		getBookUseCase:     getBookUseCase,
		updateBookUseCase:  updateBookUseCase,
		deleteBookUseCase:  deleteBookUseCase,
	}
}

// PublishBook 发布图书(上架)
// @Summary      发布图书
// @Description  管理员发布图书上架
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublishBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.BookDetail}
// @Failure      400 {object} response.Response "参数校验失败/ISBN已存在"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/v1/books [post]
func (h *BookHandler) PublishBook(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceBook, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PublishBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.publishBookUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Genre:       req.Genre,
		Year:        req.Year,
		Quantity:    req.Quantity,
		Rating:      req.Rating,
		ISBN:        req.ISBN,
		AuthorIDs:   req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  支持分类、价格区间、评分区间、关键词组合过滤;每页固定10条
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        genre query string false "分类"
// @Param        min_price query int false "最低价格(分)"
// @Param        max_price query int false "最高价格(分)"
// @Param        min_rating query number false "最低评分"
// @Param        max_rating query number false "最高评分"
// @Param        keyword query string false "关键词(标题/ISBN)"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:      req.Page,
		Genre:     req.Genre,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		MinRating: req.MinRating,
		MaxRating: req.MaxRating,
		Keyword:   req.Keyword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDetail}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  整体替换语义,author_ids缺省时保留原作者关联
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.BookDetail}
// @Failure      400 {object} response.Response "参数校验失败"
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceBook, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Genre:       req.Genre,
		Year:        req.Year,
		Quantity:    req.Quantity,
		Rating:      req.Rating,
		ISBN:        req.ISBN,
		AuthorIDs:   req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PatchBook 局部更新图书
// @Summary      局部更新图书
// @Description  只更新请求中出现的字段,其余保持原值
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.PatchBookRequest true "待更新字段"
// @Success      200 {object} response.Response{data=appbook.BookDetail}
// @Failure      400 {object} response.Response "参数校验失败"
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) PatchBook(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceBook, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateBookUseCase.ExecutePartial(c.Request.Context(), appbook.PatchBookRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Genre:       req.Genre,
		Year:        req.Year,
		Quantity:    req.Quantity,
		Rating:      req.Rating,
		ISBN:        req.ISBN,
		AuthorIDs:   req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBook 删除图书(下架)
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceBook, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// parseIDParam 解析路径中的:id参数
// 解析失败时直接写入400响应并返回false
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ErrorWithCode(c, 40900, "非法的ID参数")
		return 0, false
	}
	return uint(id), true
}
