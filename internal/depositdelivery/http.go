// Package depositdelivery manages delivery layer of PIX deposits.
package depositdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

// Service provides service layer interface needed by deposit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package depositdelivery
type Service interface {
	GenerateCharge(ctx context.Context, owner, amount string) (domain.ChargeTicket, error)
	ConfirmCharge(ctx context.Context, chargeID uuid.UUID) (domain.ConfirmChargeResult, error)
}

// Handler facilitates deposit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns deposit handler.
func NewHandler(ds Service) Handler {
	return Handler{service: ds}
}

type generateRequest struct {
	Amount string `json:"amount" binding:"required,depositamount"`
}

type generateData struct {
	Charge domain.ChargeTicket `json:"charge"`
}

// Generate handles http request to issue a PIX charge.
func (h *Handler) Generate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req generateRequest
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

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	ticket, err := h.service.GenerateCharge(ctx, authPayload.Username, req.Amount)
	if err != nil {
		switch err {
		case domain.ErrAmountNotAllowed:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: generateData{ticket}})
}

type confirmRequest struct {
	ChargeID string `json:"charge_id" binding:"required,uuid"`
}

type confirmData struct {
	Movement   domain.Movement `json:"movement"`
	NewBalance domain.Balance  `json:"new_balance"`
}

// Confirm handles http request to confirm a PIX charge.
//
// Replayed confirmations of the same charge return the original movement
// with status 200, matching the first response.
func (h *Handler) Confirm(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req confirmRequest
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

	chargeID, err := uuid.Parse(req.ChargeID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrChargeNotFound))
		return
	}

	result, err := h.service.ConfirmCharge(ctx, chargeID)
	if err != nil {
		switch err {
		case domain.ErrChargeNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrChargeExpired:
			gctx.JSON(http.StatusGone, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: confirmData{result.Movement, result.NewBalance}})
}
