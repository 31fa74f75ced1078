package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisferxd1/nexxo-business-sub001/internal/cart"
	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

type productReaderMock struct {
	products map[string]*domain.Product
	err      error
}

func (m productReaderMock) Product(_ context.Context, id string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func withSession(r *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(r.Context(), sessionKey, sessionID)
	return r.WithContext(ctx)
}

func newCartFixture() (*CartHandler, *cart.Manager) {
	sessions := cart.NewManager()
	reader := productReaderMock{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Cake", Price: 10, BusinessID: "b1"},
	}}
	return NewCartHandler(sessions, reader, 5*time.Second), sessions
}

func TestAddItem_Success(t *testing.T) {
	handler, sessions := newCartFixture()

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "p1"})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/items", bytes.NewReader(body)), "s1")

	handler.AddItem(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, 1, sessions.Session("s1").Count())
}

func TestAddItem_UnknownProduct(t *testing.T) {
	handler, sessions := newCartFixture()

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "missing"})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/items", bytes.NewReader(body)), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 0, sessions.Session("s1").Count())
}

func TestAddItem_InvalidBody(t *testing.T) {
	handler, _ := newCartFixture()

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/items", bytes.NewReader([]byte("{"))), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCart_ReturnsDisplayTotal(t *testing.T) {
	handler, sessions := newCartFixture()
	store := sessions.Session("s1")
	store.AddOrIncrement(domain.Product{ID: "p1", Price: 10, BusinessID: "b1"})
	store.AddOrIncrement(domain.Product{ID: "p1", Price: 10, BusinessID: "b1"})

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("GET", "/", nil), "s1")

	handler.GetCart(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.InDelta(t, 20, resp.Total, 1e-9)
	assert.Equal(t, 1, resp.Count)
}

func TestGetCart_EmptySessionIsEmptyCart(t *testing.T) {
	handler, _ := newCartFixture()

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("GET", "/", nil), "fresh")

	handler.GetCart(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Total)
}
