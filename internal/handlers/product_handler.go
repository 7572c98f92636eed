package handlers

import (
	"catalog/internal/apperror"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.ProductValidator
	apiKeys  []string
}

// NewProductHandler creates a new ProductHandler. apiKeys guards the write routes.
func NewProductHandler(service *services.ProductService, validate *validation.ProductValidator, apiKeys []string) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
		apiKeys:  apiKeys,
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes
// require an API key, and create/update also a valid body.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	requireKey := middleware.APIKeyRequired(h.apiKeys)
	validBody := middleware.ValidateProduct(h.validate)

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/stats", h.HandleProductStats)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", requireKey, validBody, h.HandleCreateProduct)
	productRoutes.Put("/:id", requireKey, validBody, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", requireKey, h.HandleDeleteProduct)
}

// HandleListProducts returns one page of the filtered catalog.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	q := models.DefaultListQuery()
	if err := c.QueryParser(&q); err != nil {
		return apperror.Validation("Invalid query parameters", err.Error())
	}
	if violations := h.validate.ValidateListQuery(q); len(violations) > 0 {
		return apperror.Validation("Invalid query parameters", violations...)
	}

	page, err := h.service.ListProducts(q)
	if err != nil {
		return err
	}
	resp := ok(page.Products)
	resp.Pagination = &page.Pagination
	return c.JSON(resp)
}

// HandleSearchProducts matches a term against names and descriptions.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	var q models.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return apperror.Validation("Invalid query parameters", err.Error())
	}

	results, err := h.service.SearchProducts(q)
	if err != nil {
		return err
	}
	count := len(results)
	resp := ok(results)
	resp.SearchTerm = q.Q
	resp.Count = &count
	return c.JSON(resp)
}

// HandleProductStats returns catalog statistics.
func (h *ProductHandler) HandleProductStats(c *fiber.Ctx) error {
	stats, err := h.service.ProductStats()
	if err != nil {
		return err
	}
	return c.JSON(ok(stats))
}

// HandleGetProduct returns a single product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ok(product))
}

// HandleCreateProduct stores a validated product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, found := middleware.ProductInput(c)
	if !found {
		return apperror.Internal("Internal Server Error", nil)
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(okWithMessage("Product created successfully", product))
}

// HandleUpdateProduct merges a validated body over an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	input, found := middleware.ProductInput(c)
	if !found {
		return apperror.Internal("Internal Server Error", nil)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(okWithMessage("Product updated successfully", product))
}

// HandleDeleteProduct removes a product and returns it.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	product, err := h.service.DeleteProduct(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(okWithMessage("Product deleted successfully", product))
}
