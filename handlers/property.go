package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadeemahmad9/real-estate/logger"
	"github.com/nadeemahmad9/real-estate/models"
	"github.com/nadeemahmad9/real-estate/store"
	"github.com/nadeemahmad9/real-estate/utils"
)

type PropertyController struct {
	store    store.PropertyStore
	cacheTTL time.Duration
}

func NewPropertyController(s store.PropertyStore, cacheTTL time.Duration) *PropertyController {
	return &PropertyController{store: s, cacheTTL: cacheTTL}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	if err := property.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}
	property.ApplyDefaults()

	if userID, ok := c.Get("user_id").(primitive.ObjectID); ok {
		property.CreatedBy = &userID
	}

	created, err := pc.store.Create(c.Request().Context(), &property)
	if err != nil {
		logger.L().Errorw("create property", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to create property",
		})
	}

	utils.BumpListCacheVersion(c.Request().Context())

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Property created successfully",
		"property": created,
	})
}

// ListProperties returns the full matching set, newest first. Results are
// served from the redis cache when one is configured; any cache failure
// falls through to the store.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	filter := parsePropertyFilter(c)
	ctx := c.Request().Context()

	var cacheKey string
	if utils.CacheEnabled() {
		prefix := "properties:v" + utils.ListCacheVersion(ctx)
		cacheKey = utils.GenerateQueryCacheKey(prefix, filter.CacheParams())

		var cached []models.Property
		if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
			return c.JSON(http.StatusOK, cached)
		}
	}

	properties, err := pc.store.List(ctx, filter)
	if err != nil {
		logger.L().Errorw("list properties", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch properties",
		})
	}

	if utils.CacheEnabled() {
		if err := utils.SetCached(ctx, cacheKey, properties, pc.cacheTTL); err != nil {
			logger.L().Warnw("cache properties", "error", err)
		}
	}

	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	property, err := pc.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"message": "Property not found",
			})
		}
		logger.L().Errorw("get property", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch property",
		})
	}
	return c.JSON(http.StatusOK, property)
}

// UpdateProperty replaces the mutable fields wholesale. The payload is
// bound into the same typed shape as create, so unknown body fields are
// dropped rather than merged into the document.
func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	if property.Status != "" && !property.Status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": models.ErrInvalidStatus.Error(),
		})
	}

	updated, err := pc.store.Update(c.Request().Context(), c.Param("id"), &property)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"message": "Property not found",
			})
		}
		logger.L().Errorw("update property", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to update property",
		})
	}

	utils.BumpListCacheVersion(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Property updated successfully",
		"property": updated,
	})
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	err := pc.store.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"message": "Property not found",
			})
		}
		logger.L().Errorw("delete property", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to delete property",
		})
	}

	utils.BumpListCacheVersion(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Property deleted successfully",
	})
}

// parsePropertyFilter reads the optional query params. A featured value
// other than "true"/"false" is ignored, not treated as a constraint.
func parsePropertyFilter(c echo.Context) store.PropertyFilter {
	filter := store.PropertyFilter{
		City:            c.QueryParam("city"),
		PropertyType:    c.QueryParam("propertyType"),
		TransactionType: c.QueryParam("transactionType"),
	}

	switch c.QueryParam("featured") {
	case "true":
		t := true
		filter.Featured = &t
	case "false":
		f := false
		filter.Featured = &f
	}

	if v := c.QueryParam("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	return filter
}
