package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-dashboard/backend/internal/application/usecase/goal"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal calculator endpoints.
type GoalController struct {
	calculateUseCase *goal.CalculateGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(calculateUseCase *goal.CalculateGoalUseCase) *GoalController {
	return &GoalController{
		calculateUseCase: calculateUseCase,
	}
}

// Calculate handles POST /goals/calculate requests. A newer submission from
// the same session supersedes an in-flight one; the stale request ends with
// a conflict instead of overwriting the newer result.
func (c *GoalController) Calculate(ctx *gin.Context) {
	var req dto.CalculateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query is required",
			Code:  string(domainerror.ErrCodeEmptyGoalQuery),
		})
		return
	}

	session := req.Session
	if session == "" {
		session = ctx.GetHeader("X-Session-ID")
	}
	if session == "" {
		session = ctx.ClientIP()
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), goal.CalculateGoalInput{
		Session: session,
		Query:   req.Query,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalPlanResponse(output))
}

// handleGoalError maps goal errors to HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.statusCodeFor(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func (c *GoalController) statusCodeFor(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyGoalQuery:
		return http.StatusBadRequest
	case domainerror.ErrCodeAdvisorUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAdvisorUnreachable:
		return http.StatusBadGateway
	case domainerror.ErrCodeSupersededSubmission:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
