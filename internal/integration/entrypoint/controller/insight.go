// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/usecase/insight"
	domainerror "github.com/finpulse/backend/internal/domain/error"
	"github.com/finpulse/backend/internal/integration/entrypoint/dto"
	"github.com/finpulse/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles insight endpoints.
type InsightController struct {
	analyzeUseCase  *insight.AnalyzeSpendingPatternsUseCase
	listUseCase     *insight.ListInsightsUseCase
	markReadUseCase *insight.MarkInsightReadUseCase
	dismissUseCase  *insight.DismissInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	analyzeUseCase *insight.AnalyzeSpendingPatternsUseCase,
	listUseCase *insight.ListInsightsUseCase,
	markReadUseCase *insight.MarkInsightReadUseCase,
	dismissUseCase *insight.DismissInsightUseCase,
) *InsightController {
	return &InsightController{
		analyzeUseCase:  analyzeUseCase,
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
		dismissUseCase:  dismissUseCase,
	}
}

// Analyze handles POST /insights/analyze requests. It runs a full
// generation pass and returns the newly stored insights.
func (c *InsightController) Analyze(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.analyzeUseCase.Execute(ctx.Request.Context(), insight.AnalyzeSpendingPatternsInput{UserID: userID})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsightListResponse(output.Insights))
}

// List handles GET /insights requests.
func (c *InsightController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))
	includeDismissed := ctx.Query("include_dismissed") == "true"

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insight.ListInsightsInput{
		UserID:           userID,
		IncludeDismissed: includeDismissed,
		Limit:            limit,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// MarkRead handles POST /insights/:id/read requests.
func (c *InsightController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	insightID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insight ID format",
			Code:  string(domainerror.ErrCodeInsightNotFound),
		})
		return
	}

	input := insight.MarkInsightReadInput{
		UserID:    userID,
		InsightID: insightID,
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Insight marked as read"})
}

// Dismiss handles POST /insights/:id/dismiss requests.
func (c *InsightController) Dismiss(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	insightID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insight ID format",
			Code:  string(domainerror.ErrCodeInsightNotFound),
		})
		return
	}

	input := insight.DismissInsightInput{
		UserID:    userID,
		InsightID: insightID,
	}

	if err := c.dismissUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Insight dismissed"})
}

// handleInsightError maps insight and engine errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := http.StatusBadRequest
		switch insightErr.Code {
		case domainerror.ErrCodeInsightNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeUnauthorizedInsightAccess:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	var engineErr *domainerror.EngineError
	if errors.As(err, &engineErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: engineErr.Message,
			Code:  string(engineErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
