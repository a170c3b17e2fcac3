// Package ingest backfills the crop store from the public advisory portal.
package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/agrovision/cropadvisor/internal/district"
	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/agrovision/cropadvisor/internal/domain/dto"
	"github.com/agrovision/cropadvisor/internal/pkg/logger"
	"github.com/agrovision/cropadvisor/internal/pkg/store"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewIngestService(store store.Store) *Service {
	return &Service{store: store}
}

// ParseAndSaveDistrictCrops walks the portal's district index, parses every
// supported district's crop tables concurrently and upserts them. Returns
// the districts that were ingested.
func (s *Service) ParseAndSaveDistrictCrops(ctx context.Context, mainURL string) ([]string, error) {
	doc, err := fetchDocument(ctx, mainURL)
	if err != nil {
		return nil, fmt.Errorf("fetch district index: %w", err)
	}

	ingested := make([]string, 0, 31)
	ingestedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)

	doc.Find("table.district-list tbody tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		rawName := strings.TrimSpace(tr.Find("th").Text())
		href, ok := tr.Find("td a").Attr("href")
		if !ok {
			err = fmt.Errorf("couldn't find href for district %s", rawName)
			return false
		}

		districtName, ok := district.Normalize(rawName)
		if !ok {
			logger.Warnf(ctx, "skipping unsupported district %q", rawName)
			return true
		}

		eg.Go(func() error {
			harvest, parseErr := s.parseDistrictPage(egCtx, mainURL+href, districtName)
			if parseErr != nil {
				return fmt.Errorf("parseDistrictPage, district_name-%s: %w", districtName, parseErr)
			}

			if upsertErr := s.store.UpsertDistrictCrops(egCtx, harvest); upsertErr != nil {
				return fmt.Errorf("store.UpsertDistrictCrops, district_name-%s: %w", districtName, upsertErr)
			}

			logger.Infof(ctx, "ingested crops for %s", districtName)

			ingestedMx.Lock()
			defer ingestedMx.Unlock()
			ingested = append(ingested, string(districtName))
			return nil
		})

		return true
	})
	if err != nil {
		return nil, err
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return ingested, nil
}

// parseDistrictPage reads one district's crop tables. Each table carries its
// duration tier in the caption; rows hold the agronomic columns in a fixed
// order.
func (s *Service) parseDistrictPage(ctx context.Context, pageURL string, districtName domain.District) (*dto.DistrictCrops, error) {
	doc, err := fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	harvest := dto.NewDistrictCrops(string(districtName))

	doc.Find("table.crop-table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		caption := strings.TrimSpace(table.Find("caption").Text())
		category, parseErr := domain.ParseCategory(strings.ToLower(caption))
		if parseErr != nil {
			logger.Warnf(ctx, "skipping table with caption %q on %s", caption, pageURL)
			return true
		}

		table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
			cropName := strings.TrimSpace(tr.Find("th").Text())
			if cropName == "" {
				return true
			}

			tds := tr.Find("td")
			if tds.Length() < 8 {
				err = fmt.Errorf("row for crop %q has %d cells, want 8", cropName, tds.Length())
				return false
			}

			cell := func(i int) string {
				return strings.TrimSpace(tds.Eq(i).Text())
			}

			harvest.PutRow(&dto.CropCategoryRow{
				CropName:           cropName,
				Category:           category,
				CropType:           domain.CropType(cell(0)),
				SupplyStatus:       cell(1),
				DemandStatus:       cell(2),
				RiskFactors:        cell(3),
				Duration:           cell(4),
				SoilType:           cell(5),
				WaterRequirement:   cell(6),
				ClimateSuitability: cell(7),
			})

			return true
		})

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return harvest, nil
}

// ParseAndSaveCropDetails ingests the financial/cultivation table. The
// detail source is keyed by crop name only, so one page covers every
// district.
func (s *Service) ParseAndSaveCropDetails(ctx context.Context, pageURL string) (int, error) {
	doc, err := fetchDocument(ctx, pageURL)
	if err != nil {
		return 0, fmt.Errorf("fetch crop details: %w", err)
	}

	details := make([]*dto.CropDetail, 0, 100)

	doc.Find("table.crop-details tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cropName := strings.TrimSpace(tr.Find("th").Text())
		if cropName == "" {
			return true
		}

		tds := tr.Find("td")
		if tds.Length() < 8 {
			err = fmt.Errorf("detail row for crop %q has %d cells, want 8", cropName, tds.Length())
			return false
		}

		category, parseErr := domain.ParseCategory(strings.ToLower(strings.TrimSpace(tds.Eq(0).Text())))
		if parseErr != nil {
			err = fmt.Errorf("detail row for crop %q: %w", cropName, parseErr)
			return false
		}

		d := &dto.CropDetail{CropName: cropName, Category: category}

		numeric := []*decimal.Decimal{
			&d.Investment, &d.YieldPerAcre, &d.MarketPrice,
			&d.ExpectedProfit, &d.ROI, &d.BreakEvenMonths,
		}
		for i, target := range numeric {
			raw := strings.TrimSpace(tds.Eq(i + 1).Text())
			raw = strings.ReplaceAll(raw, ",", "")
			if raw == "" {
				raw = "0"
			}

			val, decErr := decimal.NewFromString(raw)
			if decErr != nil {
				err = fmt.Errorf("parse value %q for crop %q: %w", raw, cropName, decErr)
				return false
			}
			*target = val
		}

		d.CultivationSteps = strings.TrimSpace(tds.Eq(7).Text())
		details = append(details, d)

		return true
	})
	if err != nil {
		return 0, err
	}

	if err := s.store.UpsertCropDetails(ctx, details); err != nil {
		return 0, fmt.Errorf("store.UpsertCropDetails: %w", err)
	}

	return len(details), nil
}

func fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var resp *http.Response
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = http.DefaultClient.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	return doc, nil
}
