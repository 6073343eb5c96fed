package controllers

import (
	"net/http"

	"darwinplanner/internal/models/request_models"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListAttractions godoc
// @Summary List attractions
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Router /attractions [get]
func (cc *CatalogController) ListAttractions(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	attractions, err := cc.catalogService.ListAttractions(c.Request.Context(), page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

func (cc *CatalogController) GetAttraction(c *gin.Context) {
	attraction, err := cc.catalogService.GetAttraction(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction fetched successfully")
}

func (cc *CatalogController) CreateAttraction(c *gin.Context) {
	var req request_models.AttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attraction, err := cc.catalogService.CreateAttraction(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, attraction, "Attraction created successfully")
}

func (cc *CatalogController) UpdateAttraction(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.AttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attraction, err := cc.catalogService.UpdateAttraction(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction updated successfully")
}

func (cc *CatalogController) DeleteAttraction(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := cc.catalogService.DeleteAttraction(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction deleted successfully")
}

// ListRestaurants godoc
// @Summary List restaurants
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Router /restaurants [get]
func (cc *CatalogController) ListRestaurants(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	restaurants, err := cc.catalogService.ListRestaurants(c.Request.Context(), page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurants, "Restaurants fetched successfully")
}

func (cc *CatalogController) GetRestaurant(c *gin.Context) {
	restaurant, err := cc.catalogService.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurant, "Restaurant fetched successfully")
}

func (cc *CatalogController) CreateRestaurant(c *gin.Context) {
	var req request_models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	restaurant, err := cc.catalogService.CreateRestaurant(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, restaurant, "Restaurant created successfully")
}

func (cc *CatalogController) UpdateRestaurant(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	restaurant, err := cc.catalogService.UpdateRestaurant(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurant, "Restaurant updated successfully")
}

func (cc *CatalogController) DeleteRestaurant(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := cc.catalogService.DeleteRestaurant(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Restaurant deleted successfully")
}

// ResolveMentions godoc
// @Summary Find catalog entities mentioned in a block of text
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.MentionRequest true "Text to scan"
// @Success 200 {object} utils.APIResponse
// @Router /mentions [post]
func (cc *CatalogController) ResolveMentions(c *gin.Context) {
	var req request_models.MentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := cc.catalogService.ResolveMentions(c.Request.Context(), req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Mentions resolved successfully")
}
