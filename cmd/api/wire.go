package main

import (
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/security"
	appURLUseCase "github.com/amirhossein-jamali/finance-records/internal/domain/usecase/appurl"
	authUseCase "github.com/amirhossein-jamali/finance-records/internal/domain/usecase/auth"
	balanceUseCase "github.com/amirhossein-jamali/finance-records/internal/domain/usecase/balance"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/event"
	transactionUseCase "github.com/amirhossein-jamali/finance-records/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// dependencies are the adapters the HTTP application is assembled from
type dependencies struct {
	db           *gorm.DB
	probe        handler.DatabaseProbe
	uow          persistence.UnitOfWork
	verifier     security.IdentityVerifier
	tokens       security.TokenService
	publisher    messaging.EventPublisher
	timeProvider core.TimeProvider
	logger       core.Logger
}

// buildRouter wires stores, use cases and handlers into a gin engine
func buildRouter(d dependencies) *gin.Engine {
	transactionStore := repository.NewTransactionStore(d.db, d.logger)
	appURLStore := repository.NewAppURLStore(d.db, d.logger)
	balanceStore := repository.NewBalanceStore(d.db, d.logger)
	userRepo := repository.NewUserRepository(d.db, d.logger)

	notifier := event.NewNotifier(d.publisher, d.timeProvider, d.logger)

	auth := authUseCase.NewAuthUseCase(d.verifier, d.tokens, userRepo, d.uow, d.timeProvider, d.logger)
	transactions := transactionUseCase.NewTransactionUseCase(transactionStore, userRepo, d.uow, d.timeProvider, notifier, d.logger)
	appURLs := appURLUseCase.NewAppURLUseCase(appURLStore, transactionStore, d.uow, d.timeProvider, notifier, d.logger)
	balances := balanceUseCase.NewBalanceUseCase(balanceStore, d.uow, d.timeProvider, notifier, d.logger)

	return routes.NewRouter(routes.Handlers{
		Health:       handler.NewHealthHandler(d.probe),
		Auth:         handler.NewAuthHandler(auth, d.logger),
		Transactions: handler.NewTransactionHandler(transactions, d.timeProvider, d.logger),
		AppURLs:      handler.NewAppURLHandler(appURLs, d.logger),
		Balances:     handler.NewBalanceHandler(balances, d.logger),
	}, auth, d.logger, d.timeProvider)
}
