package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/integration/persistence/model"
)

func registerResponseSteps(ctx *godog.ScenarioContext, test *testContext) {
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the account "([^"]*)" should have balance "([^"]*)"$`, test.theAccountShouldHaveBalance)
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.fieldValue(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.fieldValue(field)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(field string, expected int) error {
	value, err := t.fieldValue(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", field, value)
	}
	if len(list) != expected {
		return fmt.Errorf("list %q expected %d items, got %d", field, expected, len(list))
	}
	return nil
}

func (t *testContext) theResponseBodyShouldContain(fragment string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), fragment) {
		return fmt.Errorf("response body does not contain %q: %s", fragment, t.response.raw)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.Model(table)
	if !ok {
		return fmt.Errorf("table %q not registered", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.Conn.Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theAccountShouldHaveBalance(name, expected string) error {
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", expected, err)
	}

	var account model.AccountModel
	if err := t.db.Conn.Where("name = ?", name).First(&account).Error; err != nil {
		return fmt.Errorf("account %q not found: %w", name, err)
	}

	if !account.Balance.Equal(want) {
		return fmt.Errorf("account %q expected balance %s, got %s", name, want, account.Balance)
	}
	return nil
}

func (t *testContext) fieldValue(dotSeparatedField string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	value := getFieldValue(t.response.body, dotSeparatedField)
	if value == nil {
		return nil, fmt.Errorf("field %q not found in response: %s", dotSeparatedField, t.response.raw)
	}
	return value, nil
}

// getFieldValue walks a decoded JSON value along a dot separated path;
// numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var decoded any
	switch v := object.(type) {
	case map[string]any, []any:
		decoded = v
	default:
		raw, _ := json.Marshal(object)
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil
		}
	}

	field := decoded
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}

	return field
}
