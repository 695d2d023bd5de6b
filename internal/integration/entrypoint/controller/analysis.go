// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finpulse/backend/internal/application/usecase/analysis"
	domainerror "github.com/finpulse/backend/internal/domain/error"
	"github.com/finpulse/backend/internal/integration/entrypoint/dto"
	"github.com/finpulse/backend/internal/integration/entrypoint/middleware"
)

// AnalysisController handles health score endpoints.
type AnalysisController struct {
	calculateUseCase *analysis.CalculateHealthUseCase
	latestUseCase    *analysis.GetLatestScoreUseCase
	historyUseCase   *analysis.GetScoreHistoryUseCase
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(
	calculateUseCase *analysis.CalculateHealthUseCase,
	latestUseCase *analysis.GetLatestScoreUseCase,
	historyUseCase *analysis.GetScoreHistoryUseCase,
) *AnalysisController {
	return &AnalysisController{
		calculateUseCase: calculateUseCase,
		latestUseCase:    latestUseCase,
		historyUseCase:   historyUseCase,
	}
}

// Calculate handles POST /analysis/health-score requests. It runs a full
// scoring pass and returns the freshly appended score.
func (c *AnalysisController) Calculate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), analysis.CalculateHealthInput{UserID: userID})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHealthScoreResponse(output.Score))
}

// Latest handles GET /analysis/health-score requests.
func (c *AnalysisController) Latest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.latestUseCase.Execute(ctx.Request.Context(), analysis.GetLatestScoreInput{UserID: userID})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(output.Score))
}

// History handles GET /analysis/health-score/history requests.
func (c *AnalysisController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), analysis.GetScoreHistoryInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	scores := make([]dto.HealthScoreResponse, 0, len(output.Scores))
	for _, s := range output.Scores {
		scores = append(scores, dto.ToHealthScoreResponse(s))
	}

	ctx.JSON(http.StatusOK, dto.ScoreHistoryResponse{Scores: scores})
}

// handleEngineError maps engine errors to HTTP responses.
func (c *AnalysisController) handleEngineError(ctx *gin.Context, err error) {
	var engineErr *domainerror.EngineError
	if errors.As(err, &engineErr) {
		statusCode := http.StatusBadRequest
		switch engineErr.Code {
		case domainerror.ErrCodeScoreNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeComputation:
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: engineErr.Message,
			Code:  string(engineErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
