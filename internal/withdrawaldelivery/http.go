// Package withdrawaldelivery manages delivery layer of withdrawals.
package withdrawaldelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

// Service provides service layer interface needed by withdrawal delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package withdrawaldelivery
type Service interface {
	WithdrawYield(ctx context.Context, owner string) (domain.LedgerTxResult, error)
	WithdrawTotal(ctx context.Context, owner string) (domain.LedgerTxResult, error)
}

// Handler facilitates withdrawal delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns withdrawal handler.
func NewHandler(ws Service) Handler {
	return Handler{service: ws}
}

type withdrawalData struct {
	Movement domain.Movement `json:"movement"`
	Account  domain.Account  `json:"account"`
}

// eligibilityResponse carries the refusal reason plus the detail the UI
// renders ("try again in N days" / "window opens on DATE").
type eligibilityResponse struct {
	Error          string `json:"error"`
	Reason         string `json:"reason"`
	RetryAfterDays int    `json:"retry_after_days,omitempty"`
	NextWindowDate string `json:"next_window_date,omitempty"`
}

// Yield handles http request to withdraw the full accrued yield.
func (h *Handler) Yield(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.WithdrawYield(ctx, authPayload.Username)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: withdrawalData{result.Movement, result.Account}})
}

// Total handles http request to withdraw principal plus accrued yield.
func (h *Handler) Total(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.WithdrawTotal(ctx, authPayload.Username)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: withdrawalData{result.Movement, result.Account}})
}

func (h *Handler) writeError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	var (
		lockErr   *domain.LockPeriodError
		windowErr *domain.WithdrawalWindowError
	)

	switch {
	case errors.As(err, &lockErr):
		gctx.JSON(http.StatusUnprocessableEntity, eligibilityResponse{
			Error:          err.Error(),
			Reason:         "LOCK_PERIOD_ACTIVE",
			RetryAfterDays: lockErr.RetryAfterDays,
		})
	case errors.As(err, &windowErr):
		gctx.JSON(http.StatusUnprocessableEntity, eligibilityResponse{
			Error:          err.Error(),
			Reason:         "OUTSIDE_WITHDRAWAL_WINDOW",
			NextWindowDate: windowErr.NextWindowDate.Format(time.DateOnly),
		})
	case errors.Is(err, domain.ErrNoYieldAvailable), errors.Is(err, domain.ErrNothingToWithdraw):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	case errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	default:
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
