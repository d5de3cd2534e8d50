package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookshop/internal/application/author"
	"github.com/xiebiao/bookshop/internal/domain/policy"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AuthorHandler 作者HTTP处理器
// 与图书侧同样的权限规则:读取开放,写入仅限管理员
type AuthorHandler struct {
	createAuthorUseCase *appauthor.CreateAuthorUseCase
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
	getAuthorUseCase    *appauthor.GetAuthorUseCase
	updateAuthorUseCase *appauthor.UpdateAuthorUseCase
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createAuthorUseCase *appauthor.CreateAuthorUseCase,
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	getAuthorUseCase *appauthor.GetAuthorUseCase,
	updateAuthorUseCase *appauthor.UpdateAuthorUseCase,
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createAuthorUseCase: createAuthorUseCase,
		listAuthorsUseCase:  listAuthorsUseCase,
		getAuthorUseCase:    getAuthorUseCase,
		updateAuthorUseCase: updateAuthorUseCase,
		deleteAuthorUseCase: deleteAuthorUseCase,
	}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=appauthor.AuthorDetail}
// @Failure      400 {object} response.Response "参数校验失败"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceAuthor, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  每页固定10条,keyword按姓名子串过滤
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        keyword query string false "姓名关键词"
// @Success      200 {object} response.Response{data=appauthor.ListAuthorsResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var req dto.ListAuthorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listAuthorsUseCase.Execute(c.Request.Context(), appauthor.ListAuthorsRequest{
		Page:    req.Page,
		Keyword: req.Keyword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorDetail}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Description  整体替换语义,book_ids缺省时保留原著作关联
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=appauthor.AuthorDetail}
// @Failure      400 {object} response.Response "参数校验失败"
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceAuthor, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateAuthorUseCase.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{
		ID:        id,
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
		BookIDs:   req.BookIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PatchAuthor 局部更新作者
// @Summary      局部更新作者
// @Description  只更新请求中出现的字段,其余保持原值
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.PatchAuthorRequest true "待更新字段"
// @Success      200 {object} response.Response{data=appauthor.AuthorDetail}
// @Failure      400 {object} response.Response "参数校验失败"
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [patch]
func (h *AuthorHandler) PatchAuthor(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceAuthor, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PatchAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateAuthorUseCase.ExecutePartial(c.Request.Context(), appauthor.PatchAuthorRequest{
		ID:        id,
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
		BookIDs:   req.BookIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	if err := policy.Authorize(middleware.GetCaller(c), policy.ResourceAuthor, policy.ActionWrite, 0); err != nil {
		response.Error(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteAuthorUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
