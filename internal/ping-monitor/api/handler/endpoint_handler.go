package handler

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/dto/request"
	"URL_Ping_Monitor/internal/ping-monitor/api/dto/response"
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/service"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type EndpointHandler interface {
	GetEndpoints() gin.HandlerFunc
	CreateEndpoint() gin.HandlerFunc
	UpdateEndpoint() gin.HandlerFunc
	DeleteEndpoint() gin.HandlerFunc
	GetSummary() gin.HandlerFunc
	ImportEndpointsFromExcelFile() gin.HandlerFunc
	ExportEndpointsToExcelFile() gin.HandlerFunc
	SendSummaryReport() gin.HandlerFunc
}

type endpointHandler struct {
	logger          Logger
	endpointService service.EndpointService
	validator       *validator.Validate
}

func toEndpointResponse(e model.MonitoredEndpoint) response.EndpointResponse {
	return response.EndpointResponse{
		URL:         e.URL,
		Alias:       e.Alias,
		Group:       e.Group,
		Status:      string(e.Status),
		LastChecked: e.LastChecked,
	}
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

func (h *endpointHandler) GetEndpoints() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoints, err := h.endpointService.ListEndpoints(c)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.GetEndpoints: %w", err)
			h.logger.LoggingError(c, err, "failed to get endpoints", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		group := c.Query("group")
		res := make([]response.EndpointResponse, 0, len(endpoints))
		for _, e := range endpoints {
			if group != "" && (e.Group == nil || *e.Group != group) {
				continue
			}
			res = append(res, toEndpointResponse(e))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *endpointHandler) CreateEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.EndpointRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := h.endpointService.AddEndpoint(c, model.EndpointInput{
			URL:   req.URL,
			Alias: req.Alias,
			Group: req.Group,
		})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidURL):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid url",
				})
			case errors.Is(err, apperrors.ErrEndpointAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Url is already monitored",
				})
			default:
				err = fmt.Errorf("EndpointHandler.CreateEndpoint: %w", err)
				h.logger.LoggingError(c, err, "failed to create endpoint", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, toEndpointResponse(res))
	}
}

func (h *endpointHandler) UpdateEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := c.Query("url")
		if url == "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Url query parameter is required",
			})
			return
		}
		var req request.UpdateEndpointRequest
		if !bindJSON(c, &req) {
			return
		}
		updated, err := h.endpointService.UpdateEndpointLabels(c, url, req.Alias, req.Group)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrEndpointNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Url not found",
				})
			default:
				err = fmt.Errorf("EndpointHandler.UpdateEndpoint: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to update endpoint %s", url), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, toEndpointResponse(updated))
	}
}

func (h *endpointHandler) DeleteEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := c.Query("url")
		if url == "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Url query parameter is required",
			})
			return
		}
		err := h.endpointService.RemoveEndpoint(c, url)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrEndpointNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Url not found",
				})
			default:
				err = fmt.Errorf("EndpointHandler.DeleteEndpoint: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to delete endpoint %s", url), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Url removed",
		})
	}
}

func (h *endpointHandler) GetSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := h.endpointService.GetSummary(c)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.GetSummary: %w", err)
			h.logger.LoggingError(c, err, "failed to get summary", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.SummaryResponse{
			Online:      summary.Online,
			Offline:     summary.Offline,
			Checking:    summary.Checking,
			Total:       summary.Total,
			LatestCheck: summary.LatestCheck,
		})
	}
}

func (h *endpointHandler) SendSummaryReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := h.endpointService.SendSummaryReport(c, []string{req.Email}); err != nil {
			err = fmt.Errorf("EndpointHandler.SendSummaryReport: %w", err)
			h.logger.LoggingError(c, err, "failed to send summary report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func (h *endpointHandler) ExportEndpointsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoints, err := h.endpointService.ListEndpoints(c)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.ExportEndpointsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to get endpoints", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := h.generateExcelFile(endpoints)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.ExportEndpointsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to generate excel file", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("urls_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("EndpointHandler.ExportEndpointsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to export endpoints", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *endpointHandler) generateExcelFile(endpoints []model.MonitoredEndpoint) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "URLs"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"url", "alias", "group", "status", "last_checked"}
	err = f.SetSheetRow(sheetName, "A1", &headers)
	if err != nil {
		return nil, err
	}
	for i, e := range endpoints {
		lastChecked := ""
		if e.LastChecked != nil {
			lastChecked = time.UnixMilli(*e.LastChecked).Format("2006-01-02 15:04:05")
		}
		rowData := []interface{}{
			e.URL,
			derefLabel(e.Alias),
			derefLabel(e.Group),
			string(e.Status),
			lastChecked,
		}
		err = f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func derefLabel(label *string) string {
	if label == nil {
		return ""
	}
	return *label
}

func (h *endpointHandler) ImportEndpointsFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validInputs, invalidURLs, err := h.extractEndpointsFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("EndpointHandler.ImportEndpointsFromExcelFile: %w", err)
				h.logger.LoggingError(c, err, "failed to import endpoints", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}

		imported, rejected, err := h.endpointService.ImportEndpoints(c, validInputs)
		if err != nil {
			err = fmt.Errorf("EndpointHandler.ImportEndpointsFromExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to import endpoints", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		var importedURLs []string
		for _, e := range imported {
			importedURLs = append(importedURLs, e.URL)
		}
		invalidURLs = append(invalidURLs, rejected...)
		c.JSON(http.StatusOK, response.ImportEndpointResponse{
			ImportedCount: len(importedURLs),
			ImportedURLs:  importedURLs,
			FailedCount:   len(invalidURLs),
			FailedURLs:    invalidURLs,
		})
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

func (h *endpointHandler) extractEndpointsFromExcelFile(file *multipart.FileHeader, importSheet string) (validInputs []model.EndpointInput, invalidURLs []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	if _, ok := columnMap["url"]; !ok {
		err = errMissingRequiredColumn
		return
	}

	cell := func(row []string, column string) *string {
		i, ok := columnMap[column]
		if !ok || i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return nil
		}
		v := strings.TrimSpace(row[i])
		return &v
	}
	for _, row := range rows[1:] {
		rawURL := cell(row, "url")
		if rawURL == nil {
			continue
		}
		req := request.EndpointRequest{
			URL:   *rawURL,
			Alias: cell(row, "alias"),
			Group: cell(row, "group"),
		}
		if e := h.validator.Struct(req); e != nil {
			invalidURLs = append(invalidURLs, req.URL)
			continue
		}
		validInputs = append(validInputs, model.EndpointInput{
			URL:   req.URL,
			Alias: req.Alias,
			Group: req.Group,
		})
	}
	return
}

func NewEndpointHandler(logger Logger, endpointService service.EndpointService) EndpointHandler {
	return &endpointHandler{
		logger:          logger,
		endpointService: endpointService,
		validator:       validator.New(),
	}
}
