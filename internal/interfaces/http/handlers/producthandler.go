package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/application/product/usecases"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/interfaces/dto"
	"subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/services/markdown"
	"subcommerce/internal/shared/utils"
)

type ProductHandler struct {
	createUseCase createProductUseCase
	getUseCase    getProductUseCase
	listUseCase   listProductsUseCase
	updateUseCase updateProductUseCase
	deleteUseCase deleteProductUseCase
	markdown      markdown.MarkdownService
	logger        logger.Interface
}

func NewProductHandler(
	createUC createProductUseCase,
	getUC getProductUseCase,
	listUC listProductsUseCase,
	updateUC updateProductUseCase,
	deleteUC deleteProductUseCase,
	md markdown.MarkdownService,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		markdown:      md,
		logger:        logger,
	}
}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Security Bearer
// @Param status query string false "active or inactive"
// @Param search query string false "Title or description contains"
// @Param min_price query string false "Minimum price, decimal"
// @Param max_price query string false "Maximum price, decimal"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.ProductResponse}}
// @Failure 400 {object} utils.APIResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListProductsQuery{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.ToProductResponses(result.Products, h.markdown), result.Total, result.Page, result.PerPage)
}

// GetProduct godoc
// @Summary Show a product
// @Tags Products
// @Produce json
// @Security Bearer
// @Param id path int true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.ProductResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.getUseCase.Execute(c.Request.Context(), productID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToProductResponse(p, h.markdown))
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} utils.APIResponse{data=dto.ProductResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	priceMinor, err := money.ParseDecimal(req.Price.String())
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid price", req.Price.String()))
		return
	}

	p, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Title:        req.Title,
		Description:  req.Description,
		PriceMinor:   priceMinor,
		DurationDays: req.DurationDays,
		Status:       req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToProductResponse(p, h.markdown), "Product created successfully")
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Only the fields present in the body are changed.
// @Tags Products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Product ID"
// @Param request body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ProductResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	cmd := usecases.UpdateProductCommand{
		ProductID:    productID,
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Status:       req.Status,
	}
	if req.Price != nil {
		priceMinor, err := money.ParseDecimal(req.Price.String())
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid price", req.Price.String()))
			return
		}
		cmd.PriceMinor = &priceMinor
	}

	p, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", dto.ToProductResponse(p, h.markdown))
}

// DeleteProduct godoc
// @Summary Soft delete a product
// @Description Existing subscriptions keep their product.
// @Tags Products
// @Produce json
// @Security Bearer
// @Param id path int true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), productID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("product deleted", "product_id", productID)
	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
