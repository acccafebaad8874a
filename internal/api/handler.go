// Package api exposes the bill parsing pipeline over HTTP for the
// import-review client.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeledger/bill-importer/internal/config"
	"github.com/lifeledger/bill-importer/internal/extractor"
	"github.com/lifeledger/bill-importer/internal/models"
	"github.com/lifeledger/bill-importer/internal/parser"
)

const version = "1.0.0"

// ParseResponse is the JSON response from the /api/parse endpoint.
type ParseResponse struct {
	Success      bool                `json:"success"`
	Error        string              `json:"error,omitempty"`
	Source       string              `json:"source,omitempty"`
	Records      []models.BillRecord `json:"records"`
	TotalIncome  string              `json:"totalIncome,omitempty"`
	TotalExpense string              `json:"totalExpense,omitempty"`
	SkippedCount int                 `json:"skippedCount"`
	Count        int                 `json:"count"`
	Version      string              `json:"version,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bill-importer",
		BodyLimit:    cfg.Server.MaxUploadMB << 20,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Get("/api/health", HandleHealth)
	app.Post("/api/parse", HandleParse)
	return app
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleParse accepts a multipart bill upload, resolves its encoding,
// detects the source dialect (unless the client pins one via the
// "source" form field), and returns the aggregated parse result.
func HandleParse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("failed to open upload: %v", err))
	}
	defer f.Close()

	// Read fully up front: parsing runs on an in-memory buffer, never on
	// a live stream.
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("failed to read upload: %v", err))
	}

	text, err := extractor.Decode(data)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var result *models.ParseResult
	if sourceParam := c.FormValue("source"); sourceParam != "" {
		source, err := sourceFromParam(sourceParam)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, err.Error())
		}
		result, err = parser.ParseAs(text, source)
		if err != nil {
			return parseFailure(c, fh.Filename, err)
		}
	} else {
		result, err = parser.Parse(text)
		if err != nil {
			return parseFailure(c, fh.Filename, err)
		}
	}

	// nil marshals to JSON null, not []
	records := result.Records
	if records == nil {
		records = []models.BillRecord{}
	}

	slog.Info("bill parsed",
		"file", fh.Filename,
		"source", result.Source,
		"records", len(records),
		"skipped", result.SkippedCount,
	)

	return c.JSON(ParseResponse{
		Success:      true,
		Source:       string(result.Source),
		Records:      records,
		TotalIncome:  result.TotalIncome.StringFixed(2),
		TotalExpense: result.TotalExpense.StringFixed(2),
		SkippedCount: result.SkippedCount,
		Count:        len(records),
		Version:      version,
	})
}

func sourceFromParam(param string) (models.BillSource, error) {
	switch strings.ToLower(param) {
	case "wechat", "weixin":
		return models.SourceWeChat, nil
	case "alipay":
		return models.SourceAlipay, nil
	default:
		return models.SourceUnknown, fmt.Errorf("unknown source: %q; use wechat or alipay", param)
	}
}

func parseFailure(c *fiber.Ctx, filename string, err error) error {
	slog.Warn("bill parse failed", "file", filename, "error", err)
	return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success: false,
		Error:   msg,
		Records: []models.BillRecord{},
	})
}
