package httpapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.catalog.ListCities(c.Request.Context(), isAdminRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *Handler) ListLocations(c *gin.Context) {
	cityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid city id"})
		return
	}

	locations, err := h.catalog.ListLocations(c.Request.Context(), cityID, isAdminRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context(), isAdminRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListMenu serves the per-location menu. location_id=0 (or absent) returns
// base catalog prices.
func (h *Handler) ListMenu(c *gin.Context) {
	locationID, _ := strconv.ParseInt(c.Query("location_id"), 10, 64)
	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)

	products, err := h.catalog.ListMenu(c.Request.Context(), locationID, categoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) AdminListProducts(c *gin.Context) {
	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)

	products, err := h.catalog.ListProducts(c.Request.Context(), categoryID, true)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := h.catalog.CreateCategory(c.Request.Context(), category); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &domain.Category{
		ID:          categoryID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := h.catalog.UpdateCategory(c.Request.Context(), category); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.catalog.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := productFromRequest(0, &req)
	if err := h.catalog.CreateProduct(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := productFromRequest(productID, &req)
	if err := h.catalog.UpdateProduct(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UploadProductImage accepts a multipart image, stores it and points the
// product's image_url at the stored copy.
func (h *Handler) UploadProductImage(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, err)
		return
	}

	imageURL, err := h.images.SaveImage("product", strconv.FormatInt(productID, 10), data)
	if err != nil {
		writeError(c, err)
		return
	}

	product.ImageURL = imageURL
	if err := h.catalog.UpdateProduct(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), productID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) CreateCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city := &domain.City{Name: req.Name, IsActive: true}
	if err := h.catalog.CreateCity(c.Request.Context(), city); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := locationFromRequest(0, &req)
	if err := h.catalog.CreateLocation(c.Request.Context(), location); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *Handler) UpdateLocation(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := locationFromRequest(locationID, &req)
	if err := h.catalog.UpdateLocation(c.Request.Context(), location); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *Handler) DeleteLocation(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	if err := h.catalog.DeleteLocation(c.Request.Context(), locationID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) SetLocationProduct(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	var req LocationProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lp := &domain.LocationProduct{
		LocationID:    locationID,
		ProductID:     req.ProductID,
		PriceOverride: req.PriceOverride,
		IsAvailable:   boolOrDefault(req.IsAvailable, true),
		StockQuantity: req.StockQuantity,
		SortOrder:     req.SortOrder,
	}
	if err := h.catalog.SetLocationProduct(c.Request.Context(), lp); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lp)
}

// isAdminRequest reports whether an authenticated admin is behind the
// request, which unlocks inactive rows in the read endpoints.
func isAdminRequest(c *gin.Context) bool {
	_, ok := c.Get("admin")
	return ok
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func productFromRequest(id int64, req *ProductRequest) *domain.Product {
	return &domain.Product{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
}

func locationFromRequest(id int64, req *LocationRequest) *domain.Location {
	return &domain.Location{
		ID:           id,
		CityID:       req.CityID,
		Name:         req.Name,
		Address:      req.Address,
		WorkingHours: req.WorkingHours,
		IsActive:     boolOrDefault(req.IsActive, true),
	}
}
