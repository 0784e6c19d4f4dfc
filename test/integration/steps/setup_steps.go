package steps

import (
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/integration/persistence/model"
)

func registerSetupSteps(ctx *godog.ScenarioContext, test *testContext) {
	ctx.Given(`^an account exists with name "([^"]*)", balance "([^"]*)" and type "([^"]*)"$`, test.anAccountExists)
	ctx.Given(`^a category exists with name "([^"]*)"$`, test.aCategoryExists)
	ctx.Given(`^the savings advisor replies with:$`, test.theAdvisorRepliesWith)
	ctx.Given(`^the savings advisor answers with status (\d+)$`, test.theAdvisorAnswersWithStatus)
	ctx.Then(`^the advisor received a prompt containing "([^"]*)"$`, test.theAdvisorReceivedAPromptContaining)
}

func (t *testContext) anAccountExists(name, balance, accountType string) error {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	t.currentAccountID = uuid.New()

	now := time.Now().UTC()
	account := &model.AccountModel{
		ID:        t.currentAccountID,
		Name:      name,
		Balance:   amount,
		Type:      accountType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.Conn.Create(account).Error
}

func (t *testContext) aCategoryExists(name string) error {
	t.currentCategoryID = uuid.New()

	now := time.Now().UTC()
	category := &model.CategoryModel{
		ID:        t.currentCategoryID,
		Name:      name,
		Color:     "#6366F1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.Conn.Create(category).Error
}

func (t *testContext) theAdvisorRepliesWith(body *godog.DocString) error {
	t.advisor.Reply(body.Content)
	return nil
}

func (t *testContext) theAdvisorAnswersWithStatus(status int) error {
	t.advisor.Fail(status)
	return nil
}

func (t *testContext) theAdvisorReceivedAPromptContaining(fragment string) error {
	for _, prompt := range t.advisor.Prompts() {
		if strings.Contains(prompt, fragment) {
			return nil
		}
	}
	return fmt.Errorf("no advisor prompt contained %q (got %v)", fragment, t.advisor.Prompts())
}
