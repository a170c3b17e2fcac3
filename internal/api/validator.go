package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Binder decodes JSON bodies with sonic and defers everything else to the
// echo default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return b.fallback.Bind(i, c)
	}

	contentType := req.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return b.fallback.Bind(i, c)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, fmt.Sprintf("read body: %s", err.Error()))
	}

	if err := sonic.Unmarshal(body, i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, fmt.Sprintf("invalid json: %s", err.Error()))
	}

	return nil
}
