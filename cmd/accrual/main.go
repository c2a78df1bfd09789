// Package main runs the monthly yield accrual and charge maintenance job.
//
// It is meant to be invoked by a scheduler once per accrual period. Running
// it again within the same period is safe: already-credited accounts are
// skipped through the ledger's correlation ids.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/accountrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/chargerepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/ledgerrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/ledgerservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/movementrepo"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/yieldservice"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/configpkg"
	"github.com/SkelleTu/InvistaPro-V10-sub002/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	accountRepo := accountrepo.NewRepoPGS(db)
	movementRepo := movementrepo.NewRepoPGS(db)
	ledgerRepo := ledgerrepo.NewRepoPGS(db)
	chargeRepo := chargerepo.NewRepoPGS(db)

	ledgerService := ledgerservice.New(ledgerRepo, movementRepo, accountRepo)

	yieldService, err := yieldservice.New(ledgerService, accountRepo, config.MonthlyYieldRate)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot initialize yield service")
	}

	ctx := logger.WithContext(context.Background())
	now := time.Now()

	credited, skipped, err := yieldService.AccrueAll(ctx, now)
	if err != nil {
		logger.Fatal().Err(err).Msg("accrual run failed")
	}

	expired, err := chargeRepo.ExpirePending(ctx, now.Add(-config.PixChargeTTL))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot expire stale charges")
	}

	logger.Info().
		Str("period", now.Format("2006-01")).
		Int("credited", credited).
		Int("skipped", skipped).
		Int64("expired_charges", expired).
		Msg("accrual run finished")
}
