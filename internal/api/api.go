package api

import (
	"context"

	"github.com/agrovision/cropadvisor/internal/api/controller"
	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
	"github.com/agrovision/cropadvisor/internal/pkg/store"
	"github.com/agrovision/cropadvisor/internal/service/advisor"
	"github.com/agrovision/cropadvisor/internal/service/ingest"
	"github.com/agrovision/cropadvisor/internal/service/locator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(
	store store.Store,
	advisorService *advisor.Service,
	locatorService *locator.Service,
	ingestService *ingest.Service,
) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(svc.SessionMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(advisorService, locatorService, ingestService, store)

	districts := api.Group("/districts")
	districts.GET("/list", cntrl.GetDistricts)
	districts.POST("/resolve", cntrl.ResolveDistrict)

	crops := api.Group("/crops")
	crops.POST("/recommendations", cntrl.GetRecommendations)
	crops.POST("/backfill", cntrl.BackfillDistrictCrops)
	crops.POST("/backfill/details", cntrl.BackfillCropDetails)

	return svc, nil
}
