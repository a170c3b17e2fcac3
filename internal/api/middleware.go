package api

import (
	"context"

	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"github.com/agrovision/cropadvisor/internal/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
)

func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = random.String(16)
		}
		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}

// SessionMiddleware pulls the session ID from the auth cookie when present.
// Anonymous requests pass through; they just get no cached-district seed.
func (svc *APIService) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return next(ctx)
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return next(ctx)
		}

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeySessionID, token.SessionID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))
		ctx.Set(constants.CtxKeySessionID, token.SessionID)

		return next(ctx)
	}
}
