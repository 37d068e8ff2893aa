package handler

import (
	"net/http"

	"eats/internal/delivery/http/response"
	"eats/internal/domain/entity"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OwnerHandlerParams holds dependencies for OwnerHandler, injected by Fx.
type OwnerHandlerParams struct {
	fx.In

	OwnerUC        usecase.OwnerUsecase
	SpecialHoursUC usecase.SpecialHoursUsecase
}

// OwnerHandler serves listing edits for restaurant owners.
type OwnerHandler struct {
	ownerUC        usecase.OwnerUsecase
	specialHoursUC usecase.SpecialHoursUsecase
}

// NewOwnerHandler is the constructor for OwnerHandler
func NewOwnerHandler(params OwnerHandlerParams) *OwnerHandler {
	return &OwnerHandler{
		ownerUC:        params.OwnerUC,
		specialHoursUC: params.SpecialHoursUC,
	}
}

// UpdateProfileRequest represents the request body for a profile edit.
// Omitted fields are left untouched.
type UpdateProfileRequest struct {
	Name           *string                `json:"name,omitempty" validate:"omitempty,max=255"`
	Description    *string                `json:"description,omitempty" validate:"omitempty,max=2000"`
	Island         *string                `json:"island,omitempty" validate:"omitempty,island"`
	Cuisine        []string               `json:"cuisine,omitempty"`
	PriceLevel     *string                `json:"priceLevel,omitempty" validate:"omitempty,pricelevel"`
	Phone          *string                `json:"phone,omitempty" validate:"omitempty,max=32"`
	Website        *string                `json:"website,omitempty" validate:"omitempty,url"`
	Instagram      *string                `json:"instagram,omitempty" validate:"omitempty,max=64"`
	Facebook       *string                `json:"facebook,omitempty" validate:"omitempty,max=255"`
	Address        *string                `json:"address,omitempty" validate:"omitempty,max=255"`
	Neighborhood   *string                `json:"neighborhood,omitempty" validate:"omitempty,max=255"`
	Hours          *entity.WeeklySchedule `json:"hours,omitempty"`
	Features       []string               `json:"features,omitempty"`
	DietaryOptions []string               `json:"dietaryOptions,omitempty"`
}

// UpdateMenuRequest replaces the whole menu.
type UpdateMenuRequest struct {
	Categories []entity.MenuCategory `json:"categories" validate:"required"`
}

// AddSpecialHoursRequest represents the request body for a date override.
type AddSpecialHoursRequest struct {
	Date      string `json:"date" validate:"required"`
	Reason    string `json:"reason" validate:"required,max=255"`
	Closed    bool   `json:"closed"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// UpdateProfile applies a partial profile edit.
func (h *OwnerHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProfileInput{
		Name:           req.Name,
		Description:    req.Description,
		Cuisine:        req.Cuisine,
		Phone:          req.Phone,
		Website:        req.Website,
		Instagram:      req.Instagram,
		Facebook:       req.Facebook,
		Address:        req.Address,
		Neighborhood:   req.Neighborhood,
		Hours:          req.Hours,
		Features:       req.Features,
		DietaryOptions: req.DietaryOptions,
	}
	if req.Island != nil {
		island := entity.Island(*req.Island)
		input.Island = &island
	}
	if req.PriceLevel != nil {
		priceLevel := entity.PriceLevel(*req.PriceLevel)
		input.PriceLevel = &priceLevel
	}

	restaurant, err := h.ownerUC.UpdateProfile(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Profile updated successfully")
}

// UpdateMenu replaces the menu.
func (h *OwnerHandler) UpdateMenu(c echo.Context) error {
	var req UpdateMenuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	restaurant, err := h.ownerUC.UpdateMenu(c.Request().Context(), c.Param("id"), req.Categories)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Menu updated successfully")
}

// ListSpecialHours returns upcoming and past overrides.
func (h *OwnerHandler) ListSpecialHours(c echo.Context) error {
	list, err := h.specialHoursUC.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "")
}

// AddSpecialHours creates a date override.
func (h *OwnerHandler) AddSpecialHours(c echo.Context) error {
	var req AddSpecialHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid special hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.specialHoursUC.Add(c.Request().Context(), c.Param("id"), &usecase.AddSpecialHoursInput{
		Date:      req.Date,
		Reason:    req.Reason,
		Closed:    req.Closed,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Special hours added")
}

// DeleteSpecialHours removes a date override.
func (h *OwnerHandler) DeleteSpecialHours(c echo.Context) error {
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid special hours ID")
	}

	if err := h.specialHoursUC.Delete(c.Request().Context(), c.Param("id"), entryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Special hours deleted")
}
