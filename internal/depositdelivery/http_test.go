package depositdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/randompkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

var testAllowedAmounts = []string{"250.00", "500.00", "1000.00", "2500.00", "5000.00"}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("depositamount", ValidDepositAmount(testAllowedAmounts)); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	username := randompkg.Owner()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	ticket := domain.ChargeTicket{
		ChargeID:  uuid.New(),
		Amount:    "1000.00",
		QRPayload: "000201qrpayload6304ABCD",
		PixString: "000201qrpayload6304ABCD",
	}

	type requestBody struct {
		Amount string `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(depositService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Amount: "1000.00"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					GenerateCharge(gomock.Any(), gomock.Eq(username), gomock.Eq("1000.00")).
					Times(1).
					Return(ticket, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*generateData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(ticket, got.Charge); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: requestBody{Amount: "1000.00"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					GenerateCharge(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:        "AmountOutsideAllowedSet",
			requestBody: requestBody{Amount: "300.00"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					GenerateCharge(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field must be one of the allowed deposit amounts",
		},
		{
			name:        "MissingAmount",
			requestBody: requestBody{},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					GenerateCharge(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field is required",
		},
		{
			name:        "ErrAccountNotFound",
			requestBody: requestBody{Amount: "1000.00"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					GenerateCharge(gomock.Any(), gomock.Eq(username), gomock.Eq("1000.00")).
					Times(1).
					Return(domain.ChargeTicket{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: requestBody{Amount: "1000.00"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					GenerateCharge(gomock.Any(), gomock.Eq(username), gomock.Eq("1000.00")).
					Times(1).
					Return(domain.ChargeTicket{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			depositService := NewMockService(ctrl)
			depositHandler := NewHandler(depositService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/deposits/pix", depositHandler.Generate)

			tc.buildStubs(depositService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/deposits/pix", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &generateData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	username := randompkg.Owner()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	chargeID := uuid.New()

	result := domain.ConfirmChargeResult{
		Movement: domain.Movement{
			ID:            1,
			AccountID:     1,
			Type:          domain.MovementDeposit,
			Amount:        "1000.00",
			Description:   "PIX deposit",
			CorrelationID: chargeID.String(),
			CreatedAt:     time.Now().Truncate(time.Second).UTC(),
		},
		NewBalance: domain.Balance{
			Principal:    "1000.00",
			AccruedYield: "0.00",
			Total:        "1000.00",
		},
	}

	type requestBody struct {
		ChargeID string `json:"charge_id"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(depositService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{ChargeID: chargeID.String()},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					ConfirmCharge(gomock.Any(), gomock.Eq(chargeID)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*confirmData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(result.Movement, got.Movement); diff != "" {
					t.Errorf("res.Data movement mismatch (-want +got):\n%s", diff)
				}

				if diff := cmp.Diff(result.NewBalance, got.NewBalance); diff != "" {
					t.Errorf("res.Data balance mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "MalformedChargeID",
			requestBody: requestBody{ChargeID: "not-a-uuid"},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					ConfirmCharge(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ChargeID field is invalid",
		},
		{
			name:        "ErrChargeNotFound",
			requestBody: requestBody{ChargeID: chargeID.String()},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					ConfirmCharge(gomock.Any(), gomock.Eq(chargeID)).
					Times(1).
					Return(domain.ConfirmChargeResult{}, domain.ErrChargeNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrChargeNotFound.Error(),
		},
		{
			name:        "ErrChargeExpired",
			requestBody: requestBody{ChargeID: chargeID.String()},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					ConfirmCharge(gomock.Any(), gomock.Eq(chargeID)).
					Times(1).
					Return(domain.ConfirmChargeResult{}, domain.ErrChargeExpired)
			},
			wantStatusCode: http.StatusGone,
			wantError:      domain.ErrChargeExpired.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: requestBody{ChargeID: chargeID.String()},
			buildStubs: func(depositService *MockService) {
				depositService.EXPECT().
					ConfirmCharge(gomock.Any(), gomock.Eq(chargeID)).
					Times(1).
					Return(domain.ConfirmChargeResult{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			depositService := NewMockService(ctrl)
			depositHandler := NewHandler(depositService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/deposits/pix/confirm", depositHandler.Confirm)

			tc.buildStubs(depositService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/deposits/pix/confirm", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, username, duration); err != nil {
				t.Fatalf("middleware.AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &confirmData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
