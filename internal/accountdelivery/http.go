// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/ledgerservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// WithdrawalStater derives the account's current withdrawal state.
type WithdrawalStater interface {
	State(acct domain.Account) domain.WithdrawalState
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service     Service
	withdrawals WithdrawalStater
}

// NewHandler returns account handler.
func NewHandler(as Service, ws WithdrawalStater) Handler {
	return Handler{service: as, withdrawals: ws}
}

type balanceData struct {
	Account         domain.Account         `json:"account"`
	Balance         domain.Balance         `json:"balance"`
	WithdrawalState domain.WithdrawalState `json:"withdrawal_state"`
}

// Balance handles http request to read the dashboard balance.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	acct, err := h.service.GetByOwner(ctx, authPayload.Username)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	balance, err := ledgerservice.BalanceOf(acct)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: balanceData{
			Account:         acct,
			Balance:         balance,
			WithdrawalState: h.withdrawals.State(acct),
		},
	}

	gctx.JSON(http.StatusOK, res)
}
