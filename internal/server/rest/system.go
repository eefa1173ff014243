package rest

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed web/index.html
var indexHTML []byte

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

func HealthHandler(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return ServiceUnavailable(msgStoreUnavailable, err)
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "OK"})
	}
}

func ExportHandler(ex Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := ex.Export(c.Request().Context())
		if err != nil {
			return fromServiceError(err, msgInternal, msgExportFailed)
		}
		return c.JSON(http.StatusOK, res)
	}
}

// IndexHandler serves the single-page UI.
func IndexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, indexHTML)
	}
}
