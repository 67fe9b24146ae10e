package adminapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/openmerch/catalogd/internal/domain"
	"github.com/openmerch/catalogd/internal/webserver"
)

// InitRouter registers the product CRUD and query endpoints
func InitRouter() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

// listProducts returns all products, optionally filtered by exactly one of
// the name/category/available/price query parameters.
func listProducts(c echo.Context) error {
	ctx := c.Request().Context()
	repo := webserver.GetApp(c).Products()

	var (
		products []domain.Product
		err      error
	)
	switch {
	case c.QueryParam("name") != "":
		products, err = repo.FindByName(ctx, c.QueryParam("name"))
	case c.QueryParam("category") != "":
		category, perr := domain.ParseCategory(strings.ToUpper(c.QueryParam("category")))
		if perr != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", perr.Error(), nil)
		}
		products, err = repo.FindByCategory(ctx, category)
	case c.QueryParam("available") != "":
		available, perr := strconv.ParseBool(c.QueryParam("available"))
		if perr != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "available must be a boolean", nil)
		}
		products, err = repo.FindByAvailability(ctx, available)
	case c.QueryParam("price") != "":
		products, err = repo.FindByPrice(ctx, c.QueryParam("price"))
	default:
		products, err = repo.All(ctx)
	}

	var validationErr *domain.DataValidationError
	if errors.As(err, &validationErr) {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", validationErr.Message, nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	results := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}
	return ok(c, results)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	product, err := webserver.GetApp(c).Products().Find(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	if product == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, product.Serialize())
}

func createProduct(c echo.Context) error {
	payload, err := decodeBody(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	var product domain.Product
	if err := product.Deserialize(payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	if err := webserver.GetApp(c).Products().Create(c.Request().Context(), &product); err != nil {
		var validationErr *domain.DataValidationError
		if errors.As(err, &validationErr) {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", validationErr.Message, nil)
		}
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	zap.L().Info("product created", zap.String("product", product.String()))
	return created(c, product.Serialize())
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	ctx := c.Request().Context()
	repo := webserver.GetApp(c).Products()

	product, err := repo.Find(ctx, id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	if product == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	payload, err := decodeBody(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	// Deserialize never touches the id, so the fetched identity is kept.
	if err := product.Deserialize(payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	if err := repo.Update(ctx, product); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, product.Serialize())
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	ctx := c.Request().Context()
	repo := webserver.GetApp(c).Products()

	product, err := repo.Find(ctx, id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	if product != nil {
		if err := repo.Delete(ctx, product); err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// decodeBody decodes the request body into a plain mapping. UseNumber keeps
// prices exact instead of collapsing them to float64.
func decodeBody(c echo.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
