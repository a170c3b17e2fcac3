package controller

import (
	"net/http"

	"github.com/agrovision/cropadvisor/internal/district"
	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetDistricts(ctx echo.Context) error {
	// The master list is the source of truth; the store only narrows it to
	// districts that actually have data.
	withData, err := c.store.ListDistrictsWithData(ctx.Request().Context())
	if err != nil {
		return err
	}

	dataSet := make(map[string]bool, len(withData))
	for _, name := range withData {
		dataSet[name] = true
	}

	type districtView struct {
		Name    string `json:"name"`
		HasData bool   `json:"has_data"`
	}

	views := make([]districtView, 0, len(district.Names))
	for _, d := range district.Names {
		views = append(views, districtView{
			Name:    string(d),
			HasData: dataSet[string(d)],
		})
	}

	return ctx.JSON(http.StatusOK, views)
}

type resolveRequest struct {
	Signal SignalRequest `json:"signal" validate:"required"`
}

func (c *Controller) ResolveDistrict(ctx echo.Context) error {
	var req resolveRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	signal, err := req.Signal.toSignal()
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	sessionID, _ := ctx.Get(constants.CtxKeySessionID).(string)

	resolution := c.locator.Resolve(ctx.Request().Context(), sessionID, signal)

	return ctx.JSON(http.StatusOK, resolution)
}
