package handler

import (
	"github.com/gin-gonic/gin"

	appsearch "github.com/xiebiao/bookshop/internal/application/search"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// SearchHandler 目录检索HTTP处理器
type SearchHandler struct {
	searchCatalogUseCase *appsearch.SearchCatalogUseCase
}

// NewSearchHandler 创建检索处理器
func NewSearchHandler(searchCatalogUseCase *appsearch.SearchCatalogUseCase) *SearchHandler {
	return &SearchHandler{
		searchCatalogUseCase: searchCatalogUseCase,
	}
}

// Search 目录全文检索
// @Summary      目录检索
// @Description  同时检索图书(标题/ISBN)和作者(姓名),大小写不敏感;q为空返回空结果
// @Tags         检索
// @Produce      json
// @Param        q query string false "查询词"
// @Success      200 {object} response.Response{data=appsearch.SearchCatalogResponse}
// @Router       /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.searchCatalogUseCase.Execute(c.Request.Context(), req.Query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
