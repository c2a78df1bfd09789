//go:build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/integrationtest"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

// doJSON sends one request to the test server, decodes the response into the
// given web.Response and returns the status code.
func doJSON(t *testing.T, method, url, token string, reqBody any, res *web.Response) int {
	t.Helper()

	var body *bytes.Reader

	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		require.NoError(t, err)

		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set(middleware.AuthHeaderKey, fmt.Sprintf("%s %s", middleware.AuthTypeBearer, token))
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	require.NoError(t, json.NewDecoder(w.Body).Decode(res))

	return w.Code
}

// TestDepositLifecycleAPI walks the whole deposit journey through the public
// API: sign up, issue a PIX charge, confirm it twice, then read the balance
// and the movement history back.
func TestDepositLifecycleAPI(t *testing.T) {
	defer integrationtest.Flush(t, server.DB)

	// Sign up. The response carries the session tokens used below.
	signup := web.Response{}

	code := doJSON(t, http.MethodPost, "/users", "", gin.H{
		"username": "investor",
		"password": "qwerty",
		"fullname": "Inves Tor",
		"email":    "investor@boo.email",
	}, &signup)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, signup.AccessToken)

	token := signup.AccessToken

	// Issue a charge for an allowed amount.
	var chargeRes struct {
		Charge domain.ChargeTicket `json:"charge"`
	}

	res := web.Response{Data: &chargeRes}

	code = doJSON(t, http.MethodPost, "/deposits/pix", token, gin.H{"amount": "1000.00"}, &res)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "1000.00", chargeRes.Charge.Amount)
	require.True(t, strings.HasPrefix(chargeRes.Charge.QRPayload, "000201"), "QRPayload=%v", chargeRes.Charge.QRPayload)
	require.NotEmpty(t, chargeRes.Charge.PixString)

	// Amounts outside the allowed set never reach the gateway.
	res = web.Response{}
	code = doJSON(t, http.MethodPost, "/deposits/pix", token, gin.H{"amount": "1234.56"}, &res)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Amount field must be one of the allowed deposit amounts", res.Error)

	// Confirm the charge.
	var confirmRes struct {
		Movement   domain.Movement `json:"movement"`
		NewBalance domain.Balance  `json:"new_balance"`
	}

	res = web.Response{Data: &confirmRes}

	code = doJSON(t, http.MethodPost, "/deposits/pix/confirm", token,
		gin.H{"charge_id": chargeRes.Charge.ChargeID}, &res)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, domain.MovementDeposit, confirmRes.Movement.Type)
	require.Equal(t, "1000.00", confirmRes.NewBalance.Principal)
	require.Equal(t, "1000.00", confirmRes.NewBalance.Total)

	firstMovementID := confirmRes.Movement.ID

	// A replayed confirmation returns the original movement, not a second credit.
	confirmRes = struct {
		Movement   domain.Movement `json:"movement"`
		NewBalance domain.Balance  `json:"new_balance"`
	}{}
	res = web.Response{Data: &confirmRes}

	code = doJSON(t, http.MethodPost, "/deposits/pix/confirm", token,
		gin.H{"charge_id": chargeRes.Charge.ChargeID}, &res)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, firstMovementID, confirmRes.Movement.ID)
	require.Equal(t, "1000.00", confirmRes.NewBalance.Total)

	// The dashboard shows the new balance and the locked state.
	var balanceRes struct {
		Account         domain.Account         `json:"account"`
		Balance         domain.Balance         `json:"balance"`
		WithdrawalState domain.WithdrawalState `json:"withdrawal_state"`
	}

	res = web.Response{Data: &balanceRes}

	code = doJSON(t, http.MethodGet, "/accounts/balance", token, nil, &res)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "1000.00", balanceRes.Balance.Total)
	require.Equal(t, domain.WithdrawalStateLocked, balanceRes.WithdrawalState)
	require.NotNil(t, balanceRes.Account.FirstQualifyingDepositAt)

	// History holds exactly the one deposit.
	var listRes struct {
		Movements []domain.Movement `json:"movements"`
	}

	res = web.Response{Data: &listRes}

	code = doJSON(t, http.MethodGet, "/movements?page_id=1&page_size=10", token, nil, &res)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, listRes.Movements, 1)
	require.Equal(t, firstMovementID, listRes.Movements[0].ID)

	// Total withdrawal is refused while the lock period runs.
	var eligibility struct {
		Error          string `json:"error"`
		Reason         string `json:"reason"`
		RetryAfterDays int    `json:"retry_after_days"`
	}

	req, err := http.NewRequest(http.MethodPost, "/withdrawals/total", bytes.NewReader(nil))
	require.NoError(t, err)
	req.Header.Set(middleware.AuthHeaderKey, fmt.Sprintf("%s %s", middleware.AuthTypeBearer, token))

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&eligibility))
	require.Equal(t, "LOCK_PERIOD_ACTIVE", eligibility.Reason)
	require.Equal(t, 95, eligibility.RetryAfterDays)

	// With nothing accrued yet, a yield withdrawal fails too.
	res = web.Response{}
	code = doJSON(t, http.MethodPost, "/withdrawals/yield", token, nil, &res)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Equal(t, domain.ErrNoYieldAvailable.Error(), res.Error)
}
