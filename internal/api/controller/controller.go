package controller

import (
	"github.com/agrovision/cropadvisor/internal/pkg/store"
	"github.com/agrovision/cropadvisor/internal/service/advisor"
	"github.com/agrovision/cropadvisor/internal/service/ingest"
	"github.com/agrovision/cropadvisor/internal/service/locator"
)

type Controller struct {
	advisor *advisor.Service
	locator *locator.Service
	ingest  *ingest.Service
	store   store.Store
}

func NewController(
	advisorService *advisor.Service,
	locatorService *locator.Service,
	ingestService *ingest.Service,
	store store.Store,
) *Controller {
	return &Controller{
		advisor: advisorService,
		locator: locatorService,
		ingest:  ingestService,
		store:   store,
	}
}
