// Package main provides the API to manage users, ledger accounts,
// PIX deposits and yield withdrawals.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/SkelleTu/InvistaPro-V10-sub002/cmd/httpserver"
	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/middleware"
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

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
