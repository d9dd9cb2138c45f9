package spesa_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/odit-bit/spesabot/spesa"
	"github.com/odit-bit/spesabot/spesa/assist"
	"github.com/odit-bit/spesabot/spesa/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	doc []byte
}

func (m *memPersister) Load(v any) (bool, error) {
	if m.doc == nil {
		return false, nil
	}
	return true, json.Unmarshal(m.doc, v)
}

func (m *memPersister) Save(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.doc = b
	return nil
}

type mockProvider struct {
	ChatFunc func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error)
}

func (mp *mockProvider) Chat(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
	return mp.ChatFunc(ctx, req)
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := list.Open(&memPersister{})
	require.NoError(t, err)

	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			return &assist.CCRes{
				ID: "res-1",
				Choices: []assist.Choice{
					{Message: assist.Message{Role: assist.RoleAssistant, Content: "mock response"}},
				},
			}, nil
		},
	}

	s := &spesa.Spesa{
		Lists:  store,
		Assist: assist.New(mp, "gpt-4o"),
	}

	e := echo.New()
	spesa.RestHandler(context.Background(), s, e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRest_list_crud(t *testing.T) {
	e := newTestServer(t)

	// add
	rec := doJSON(e, http.MethodPost, "/v1/lists/42/items", `{"text":"2 kg di patate"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var added spesa.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, "patate", added.Item.Name)
	assert.Equal(t, "2 kg", added.Item.Quantity)

	// empty add rejected
	rec = doJSON(e, http.MethodPost, "/v1/lists/42/items", `{"text":"  "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// get
	rec = doJSON(e, http.MethodGet, "/v1/lists/42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got spesa.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)

	// quantity
	rec = doJSON(e, http.MethodPut, "/v1/lists/42/items/0/quantity", `{"quantity":"3 kg"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// remove out of range
	rec = doJSON(e, http.MethodDelete, "/v1/lists/42/items/7", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	// remove
	rec = doJSON(e, http.MethodDelete, "/v1/lists/42/items/0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// clear
	rec = doJSON(e, http.MethodDelete, "/v1/lists/42", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRest_assist(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/v1/lists/42/items", `{"text":"pane"}`)

	for _, path := range []string{
		"/v1/assist/suggest",
		"/v1/assist/categories",
		"/v1/assist/mealplan",
		"/v1/assist/ask",
	} {
		rec := doJSON(e, http.MethodPost, path, `{"list_id":"42","question":"cosa cucino?"}`)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var res spesa.AssistResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "mock response", res.Text, path)
	}
}

func TestRest_assist_requires_list_id(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/assist/suggest", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
