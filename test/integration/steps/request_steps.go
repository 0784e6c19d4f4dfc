package steps

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

func registerRequestSteps(ctx *godog.ScenarioContext, test *testContext) {
	// Request steps double as scenario setup, so they are not keyword-scoped.
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I upload a CSV file to "([^"]*)" with content:$`, test.iUploadACSVFileToWithContent)
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), "application/json", nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload io.Reader
	if body != nil && body.Content != "" {
		payload = strings.NewReader(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), "application/json", payload)
}

// replacePlaceholders swaps seeded entity ids into paths and bodies so the
// features do not have to know the generated UUIDs.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	return content
}

// iUploadACSVFileToWithContent posts the doc string as a multipart file
// field named "file", the same shape the frontend file picker produces.
func (t *testContext) iUploadACSVFileToWithContent(path string, content *godog.DocString) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "transacciones.csv")
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(content.Content)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return t.executeRequest(http.MethodPost, path, writer.FormDataContentType(), &buf)
}

func (t *testContext) executeRequest(method, path, contentType string, payload io.Reader) error {
	req, err := http.NewRequest(method, t.server.URL+path, payload)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var body any
	if err := json.Unmarshal(raw, &body); err == nil {
		t.response.body = body
	} else {
		t.response.body = string(raw)
	}

	return nil
}
