// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-dashboard/backend/internal/application/usecase/account"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/category"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/goal"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finanzas-dashboard/backend/internal/infra/server/router"
	"github.com/finanzas-dashboard/backend/internal/integration/adapters"
	"github.com/finanzas-dashboard/backend/internal/integration/cache"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finanzas-dashboard/backend/internal/integration/persistence"
	"github.com/finanzas-dashboard/backend/internal/integration/persistence/model"
	"github.com/finanzas-dashboard/backend/internal/integration/storage"
	"github.com/finanzas-dashboard/backend/test/integration/mock"
)

// testContext carries the per-scenario state: the test server, the last
// response and the entities seeded by Given steps.
type testContext struct {
	server  *httptest.Server
	client  *http.Client
	headers map[string]string

	response *response

	db      *mock.Db
	advisor *mock.Advisor

	currentAccountID  uuid.UUID
	currentCategoryID uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite configures global test resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario wires a fresh API server against the in-memory
// database, embedded redis and the advisor webhook mock, then registers
// every step definition.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:  &http.Client{Timeout: 10 * time.Second},
		headers: map[string]string{},
		db: mock.NewDb(map[string]any{
			"categories":   &model.CategoryModel{},
			"accounts":     &model.AccountModel{},
			"transactions": &model.TransactionModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.db.Clear(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}

		test.headers = map[string]string{}
		test.response = nil
		test.currentAccountID = uuid.Nil
		test.currentCategoryID = uuid.Nil
		test.advisor = mock.NewAdvisor()
		test.server = httptest.NewServer(test.buildEngine())

		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		if test.advisor != nil {
			test.advisor.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
}

func (t *testContext) buildEngine() *gin.Engine {
	entityCache := cache.NewRedisCache(mock.NewRedis(), time.Minute)

	categoryRepo := persistence.NewCategoryRepository(t.db.Conn)
	accountRepo := persistence.NewAccountRepository(t.db.Conn)
	transactionRepo := persistence.NewTransactionRepository(t.db.Conn)

	listCategories := category.NewListCategoriesUseCase(categoryRepo, entityCache)
	createCategory := category.NewCreateCategoryUseCase(categoryRepo, entityCache)
	findOrCreateCategory := category.NewFindOrCreateCategoryUseCase(categoryRepo, entityCache)

	listAccounts := account.NewListAccountsUseCase(accountRepo, entityCache)
	createAccount := account.NewCreateAccountUseCase(accountRepo, entityCache)

	listTransactions := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo, accountRepo, entityCache)
	createTransaction := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, findOrCreateCategory, entityCache)
	importCSV := transaction.NewImportCSVUseCase(transactionRepo, accountRepo, findOrCreateCategory, entityCache)
	exportCSV := transaction.NewExportCSVUseCase(listTransactions)

	getDashboard := dashboard.NewGetDashboardUseCase(listTransactions, listAccounts)

	advisor := adapters.NewWebhookAdvisor(t.advisor.URL())
	calculateGoal := goal.NewCalculateGoalUseCase(advisor, goal.NewSubmissionTracker(), 5*time.Second)

	r := router.NewRouter(
		controller.NewHealthController(func() bool { return t.db != nil }),
		controller.NewCategoryController(listCategories, createCategory),
		controller.NewAccountController(listAccounts, createAccount),
		controller.NewTransactionController(listTransactions, createTransaction, importCSV, exportCSV),
		controller.NewDashboardController(getDashboard),
		controller.NewGoalController(calculateGoal),
		controller.NewUploadController(storage.NewUnavailableStorage()),
		middleware.NewRateLimiter(),
	)
	return r.Setup("test")
}
