package controller

import (
	"net/http"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

type recommendationsRequest struct {
	Category string        `json:"category" validate:"required,oneof=short medium long"`
	Signal   SignalRequest `json:"signal" validate:"required"`
}

func (c *Controller) GetRecommendations(ctx echo.Context) error {
	var req recommendationsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	signal, err := req.Signal.toSignal()
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	sessionID, _ := ctx.Get(constants.CtxKeySessionID).(string)

	recommendation := c.advisor.GetCrops(ctx.Request().Context(), sessionID, category, signal)

	return ctx.JSON(http.StatusOK, recommendation)
}
