package movementdelivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/test"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/errorspkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/randompkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestList(t *testing.T) {
	username := randompkg.Owner()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	account := test.RandomAccount(username)
	account.ID = 1

	movements := []domain.Movement{
		{
			ID:        2,
			AccountID: account.ID,
			Type:      domain.MovementYieldCredit,
			Amount:    "8.35",
			CreatedAt: time.Now().Truncate(time.Second).UTC(),
		},
		{
			ID:        1,
			AccountID: account.ID,
			Type:      domain.MovementDeposit,
			Amount:    "1000.00",
			CreatedAt: time.Now().Truncate(time.Second).UTC(),
		},
	}

	testCases := []struct {
		name           string
		query          string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(movementService *MockService, accounts *MockAccountGetter)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:  "OK",
			query: "?page_id=1&page_size=10",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(movementService *MockService, accounts *MockAccountGetter) {
				accounts.EXPECT().
					GetByOwner(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(account, nil)

				movementService.EXPECT().
					ListMovements(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(int32(10)), gomock.Eq(int32(1))).
					Times(1).
					Return(movements, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*listData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(movements, got.Movements); diff != "" {
					t.Errorf("res.Data.Movements mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "NoAuthorization",
			query: "?page_id=1&page_size=10",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(movementService *MockService, accounts *MockAccountGetter) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:  "MissingPageID",
			query: "?page_size=10",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(movementService *MockService, accounts *MockAccountGetter) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "PageID field is required",
		},
		{
			name:  "PageSizeTooLarge",
			query: "?page_id=1&page_size=500",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(movementService *MockService, accounts *MockAccountGetter) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "PageSize field must be at most 100",
		},
		{
			name:  "ErrAccountNotFound",
			query: "?page_id=1&page_size=10",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(movementService *MockService, accounts *MockAccountGetter) {
				accounts.EXPECT().
					GetByOwner(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:  "InternalServerError",
			query: "?page_id=1&page_size=10",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(movementService *MockService, accounts *MockAccountGetter) {
				accounts.EXPECT().
					GetByOwner(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(account, nil)

				movementService.EXPECT().
					ListMovements(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
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

			movementService := NewMockService(ctrl)
			accounts := NewMockAccountGetter(ctrl)
			movementHandler := NewHandler(movementService, accounts)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/movements", movementHandler.List)

			tc.buildStubs(movementService, accounts)

			url := fmt.Sprintf("/movements%s", tc.query)

			req, err := http.NewRequest(http.MethodGet, url, nil)
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

			res := web.Response{Data: &listData{}}

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
