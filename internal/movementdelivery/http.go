// Package movementdelivery manages delivery layer of ledger movements.
package movementdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

// Service provides service layer interface needed by movement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package movementdelivery
type Service interface {
	ListMovements(ctx context.Context, accountID, pageSize, pageID int32) ([]domain.Movement, error)
}

// AccountGetter resolves the authenticated user's ledger account.
type AccountGetter interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// Handler facilitates movement delivery layer logic.
type Handler struct {
	service  Service
	accounts AccountGetter
}

// NewHandler returns movement handler.
func NewHandler(ms Service, ag AccountGetter) Handler {
	return Handler{service: ms, accounts: ag}
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type listData struct {
	Movements []domain.Movement `json:"movements"`
}

// List handles http request to list the account history, newest first.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	acct, err := h.accounts.GetByOwner(ctx, authPayload.Username)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	movements, err := h.service.ListMovements(ctx, acct.ID, req.PageSize, req.PageID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{movements}})
}
