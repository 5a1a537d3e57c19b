package handler

import (
	"net/http"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"
	"salesanalytics/internal/service"
	"salesanalytics/pkg/response"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	salesService service.SalesService
}

func NewSalesHandler(salesService service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	salesGroup := router.Group("/api/sales")
	{
		salesGroup.GET("", h.GetSales)
		salesGroup.GET("/regions", h.GetRevenueByRegion)
		salesGroup.GET("/products", h.GetTopProducts)
		salesGroup.GET("/trends", h.GetTrends)
		salesGroup.GET("/summary", h.GetSummary)
		salesGroup.GET("/aggregate", h.Aggregate)
	}
	router.GET("/api/categories", h.GetCategories)
}

// bindQuery reads the shared filter parameters; unknown keys are ignored
func bindQuery(c *gin.Context) (analytics.RawQuery, bool) {
	var raw analytics.RawQuery
	if err := c.ShouldBindQuery(&raw); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(http.StatusBadRequest, response.CodeValidation, err.Error(), nil))
		return raw, false
	}
	return raw, true
}

// @Summary      List sales
// @Description  Filtered sales records together with revenue per region
// @Tags         Sales
// @Produce      json
// @Param        product    query  string  false  "Exact product name"
// @Param        category   query  string  false  "Category, expanded to its products"
// @Param        region     query  string  false  "Exact region name"
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=model.FilteredSales}
// @Failure      400  {object}  response.Response  "Invalid filter"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/sales [get]
func (h *SalesHandler) GetSales(c *gin.Context) {
	raw, ok := bindQuery(c)
	if !ok {
		return
	}

	sales, err := h.salesService.QueryFiltered(c.Request.Context(), raw)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, sales))
}

// @Summary      Revenue by region
// @Description  Sum of record totals per region, sorted by region name
// @Tags         Sales
// @Produce      json
// @Param        product    query  string  false  "Exact product name"
// @Param        category   query  string  false  "Category, expanded to its products"
// @Param        region     query  string  false  "Exact region name"
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=[]model.RegionRevenue}
// @Failure      400  {object}  response.Response  "Invalid filter"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/sales/regions [get]
func (h *SalesHandler) GetRevenueByRegion(c *gin.Context) {
	raw, ok := bindQuery(c)
	if !ok {
		return
	}

	regions, err := h.salesService.QueryByRegion(c.Request.Context(), raw)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, regions))
}

// @Summary      Top products
// @Description  Units sold per product within the date range, highest first
// @Tags         Sales
// @Produce      json
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=[]model.ProductQuantity}
// @Failure      400  {object}  response.Response  "Invalid date"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/sales/products [get]
func (h *SalesHandler) GetTopProducts(c *gin.Context) {
	raw, ok := bindQuery(c)
	if !ok {
		return
	}

	products, err := h.salesService.QueryByProduct(c.Request.Context(), raw)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}

// @Summary      Sales trends
// @Description  Revenue and units per daily, weekly or monthly bucket. Both dates are required.
// @Tags         Sales
// @Produce      json
// @Param        startDate  query  string  true   "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  true   "End date (YYYY-MM-DD)"
// @Param        period     query  string  false  "daily, weekly or monthly (default)"
// @Success      200  {object}  response.Response{data=[]model.TrendPoint}
// @Failure      400  {object}  response.Response  "Missing or invalid dates"
// @Failure      404  {object}  response.Response  "No data in range"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/sales/trends [get]
func (h *SalesHandler) GetTrends(c *gin.Context) {
	raw, ok := bindQuery(c)
	if !ok {
		return
	}

	trends, err := h.salesService.QueryTrends(c.Request.Context(), raw, c.Query("period"))
	if err != nil {
		writeError(c, err, []model.TrendPoint{})
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, trends))
}

// @Summary      Sales summary
// @Description  Record count, units sold and revenue for the filtered records
// @Tags         Sales
// @Produce      json
// @Param        product    query  string  false  "Exact product name"
// @Param        category   query  string  false  "Category, expanded to its products"
// @Param        region     query  string  false  "Exact region name"
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=model.SalesSummary}
// @Failure      400  {object}  response.Response  "Invalid filter"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/sales/summary [get]
func (h *SalesHandler) GetSummary(c *gin.Context) {
	raw, ok := bindQuery(c)
	if !ok {
		return
	}

	summary, err := h.salesService.QuerySummary(c.Request.Context(), raw)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// @Summary      Grouped aggregation
// @Description  Generic entry point: filter, then group by region, product, period or raw
// @Tags         Sales
// @Produce      json
// @Param        groupBy    query  string  true   "region, product, period or raw"
// @Param        period     query  string  false  "Bucket size when groupBy=period"
// @Param        product    query  string  false  "Exact product name"
// @Param        category   query  string  false  "Category, expanded to its products"
// @Param        region     query  string  false  "Exact region name"
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=analytics.Result}
// @Failure      400  {object}  response.Response  "Invalid filter or grouping"
// @Failure      404  {object}  response.Response  "No data in range"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/sales/aggregate [get]
func (h *SalesHandler) Aggregate(c *gin.Context) {
	raw, ok := bindQuery(c)
	if !ok {
		return
	}

	result, err := h.salesService.QueryGrouped(c.Request.Context(), raw, c.Query("groupBy"), c.Query("period"))
	if err != nil {
		writeError(c, err, analytics.Result{Rows: []analytics.Row{}})
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      List categories
// @Description  Categories accepted by the category filter and the products each expands to
// @Tags         Sales
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.CategoryResponse}
// @Router       /api/categories [get]
func (h *SalesHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.salesService.Categories()))
}
