package controller

import (
	"net/http"

	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

type backfillRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (c *Controller) BackfillDistrictCrops(ctx echo.Context) error {
	var req backfillRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	ingested, err := c.ingest.ParseAndSaveDistrictCrops(ctx.Request().Context(), req.URL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]any{"districts": ingested})
}

func (c *Controller) BackfillCropDetails(ctx echo.Context) error {
	var req backfillRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	count, err := c.ingest.ParseAndSaveCropDetails(ctx.Request().Context(), req.URL)
	if err != nil {
		return err
	}

	if count == 0 {
		return constants.NewCodedError(http.StatusUnprocessableEntity, "no crop details found at url")
	}

	return ctx.JSON(http.StatusOK, map[string]any{"ingested": count})
}
