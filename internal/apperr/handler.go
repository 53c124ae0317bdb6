package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/article-feed/pkg/jsonapi"
	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler renders every error as a JSON:API error document
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, detail := classify(err)
		if status == http.StatusInternalServerError {
			slog.Error("Unhandled error", "error", err, "uri", c.Request().RequestURI)
		}

		c.Response().Header().Set(echo.HeaderContentType, jsonapi.MediaType)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, jsonapi.NewError(status, detail))
	}
}

func classify(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	return http.StatusInternalServerError, "internal server error"
}
