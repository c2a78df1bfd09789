// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountdelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/chargerepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/depositdelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/depositservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/ledgerrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/ledgerservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/movementdelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/movementrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/sessiondelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/sessionrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/sessionservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/simulationdelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/simulationservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/userdelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/userrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/userservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/withdrawaldelivery"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/withdrawalservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/configpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/pixpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	movementRepo := movementrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)
	chargeRepo := chargerepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	accountService := accountservice.New(accountRepo)
	userService := userservice.New(userRepo, accountService)
	ledgerService := ledgerservice.New(ledgerRepo, movementRepo, accountRepo)

	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)
	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	merchant := pixpkg.Merchant{
		PixKey: config.PixKey,
		Name:   config.PixMerchantName,
		City:   config.PixMerchantCity,
	}

	allowedAmounts := config.DepositAmounts()

	depositService := depositservice.New(chargeRepo, ledgerService, accountService, merchant, allowedAmounts)

	withdrawalService := withdrawalservice.New(ledgerService, accountService, withdrawalservice.Policy{
		LockPeriodDays: config.LockPeriodDays,
		WindowLastDay:  config.WithdrawalWindowLastDay,
	})

	simulationService, err := simulationservice.New(config.MonthlyYieldRate)
	if err != nil {
		return nil, errors.New("cannot initialize simulation service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	accountHandler := accountdelivery.NewHandler(accountService, withdrawalService)
	movementHandler := movementdelivery.NewHandler(ledgerService, accountService)
	depositHandler := depositdelivery.NewHandler(depositService)
	withdrawalHandler := withdrawaldelivery.NewHandler(withdrawalService)
	simulationHandler := simulationdelivery.NewHandler(simulationService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)
	engine.POST("/simulation", simulationHandler.Simulate)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/accounts/balance", accountHandler.Balance)
	authRoutes.GET("/movements", movementHandler.List)

	authRoutes.POST("/deposits/pix", depositHandler.Generate)
	authRoutes.POST("/deposits/pix/confirm", depositHandler.Confirm)

	authRoutes.POST("/withdrawals/yield", withdrawalHandler.Yield)
	authRoutes.POST("/withdrawals/total", withdrawalHandler.Total)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("depositamount", depositdelivery.ValidDepositAmount(allowedAmounts))
		if err != nil {
			return nil, errors.New("cannot register deposit amount validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
