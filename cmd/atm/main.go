package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-atm/internal/accountrepo"
	"github.com/go-petr/pet-atm/internal/accountservice"
	"github.com/go-petr/pet-atm/internal/receiptrepo"
	"github.com/go-petr/pet-atm/internal/sessionservice"
	"github.com/go-petr/pet-atm/internal/terminaldelivery"
	"github.com/go-petr/pet-atm/internal/transactionservice"
	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/go-petr/pet-atm/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.GetLogger(config)
	ctx := logger.WithContext(context.Background())

	symbol := config.CurrencySymbol

	accountRepo := accountrepo.NewRepoMem()

	receiptRepo, err := receiptrepo.NewRepoFile(config.ReceiptDir, symbol)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create receipt dir")
	}

	accountService := accountservice.New(accountRepo)
	sessionService := sessionservice.New(accountService, config.PinAttempts)
	transactionService := transactionservice.New(accountRepo, receiptRepo)

	handler := terminaldelivery.NewHandler(
		accountService,
		sessionService,
		transactionService,
		symbol,
		os.Stdin,
		os.Stdout,
	)

	if err := handler.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("terminal input failed")
	}
}
