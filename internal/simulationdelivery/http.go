// Package simulationdelivery manages delivery layer of balance simulations.
package simulationdelivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

// Service provides service layer interface needed by simulation delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package simulationdelivery
type Service interface {
	Simulate(input domain.SimulationInput) (domain.SimulationResult, error)
}

// Handler facilitates simulation delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns simulation handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type simulateRequest struct {
	InitialDeposit      string `json:"initial_deposit" binding:"required"`
	Months              int    `json:"months" binding:"required,min=1"`
	MonthlyExtraDeposit string `json:"monthly_extra_deposit"`
}

// Simulate handles http request to project a balance forecast.
func (h *Handler) Simulate(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req simulateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	result, err := h.service.Simulate(domain.SimulationInput{
		InitialDeposit:      req.InitialDeposit,
		Months:              req.Months,
		MonthlyExtraDeposit: req.MonthlyExtraDeposit,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidSimulationInput, domain.ErrSimulationTooLong:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, result)
}
