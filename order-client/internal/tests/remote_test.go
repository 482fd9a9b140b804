package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorestaurant/order-client/internal/composition"
	"gorestaurant/order-client/internal/domain"
	"gorestaurant/order-client/internal/mocks"
	"gorestaurant/order-client/internal/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   map[string]any
}

func newMenuServer(t *testing.T, status int, response string) (*remote.Client, *recordedRequest) {
	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path
		if r.Body != nil {
			payload, _ := io.ReadAll(r.Body)
			if len(payload) > 0 {
				assert.NoError(t, json.Unmarshal(payload, &recorded.body))
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)
	return remote.NewClient(server.URL+"/", server.Client()), recorded
}

func TestClient_GetFood(t *testing.T) {
	client, recorded := newMenuServer(t, http.StatusOK,
		`{"id":1,"name":"Ao molho","price":"19.90","extras":[{"id":1,"name":"Bacon","value":"1.50"}]}`)

	food, err := client.GetFood(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, recorded.method)
	assert.Equal(t, "/foods/1", recorded.path)
	assert.Equal(t, "Ao molho", food.Name)
	assert.True(t, food.Price.Equal(dec("19.90")))
	require.Len(t, food.Extras, 1)
	assert.True(t, food.Extras[0].Value.Equal(dec("1.50")))
}

func TestClient_GetFoodNotFound(t *testing.T) {
	client, _ := newMenuServer(t, http.StatusNotFound, "food not found\n")

	food, err := client.GetFood(context.Background(), 404)

	assert.Nil(t, food)
	assert.ErrorIs(t, err, remote.ErrNotFound)
	var statusErr *remote.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "food not found", statusErr.Body)
}

func TestClient_AddFavorite(t *testing.T) {
	client, recorded := newMenuServer(t, http.StatusCreated, `{}`)

	err := client.AddFavorite(context.Background(), pasta().Favorite())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/favorites", recorded.path)
	assert.EqualValues(t, 1, recorded.body["id"])
	assert.Equal(t, "Ao molho", recorded.body["name"])
	assert.NotContains(t, recorded.body, "extras")
}

func TestClient_RemoveFavorite(t *testing.T) {
	client, recorded := newMenuServer(t, http.StatusNoContent, "")

	require.NoError(t, client.RemoveFavorite(context.Background(), 2))

	assert.Equal(t, http.MethodDelete, recorded.method)
	assert.Equal(t, "/favorites/2", recorded.path)
}

func TestClient_CreateOrder(t *testing.T) {
	client, recorded := newMenuServer(t, http.StatusCreated, `{"id":12,"name":"Ao molho","quantity":1,"total":"16"}`)

	state := composition.New(pasta())
	state.IncrementExtra(1)
	state.IncrementExtra(1)

	order, err := client.CreateOrder(context.Background(), state.OrderRequest())
	require.NoError(t, err)

	assert.Equal(t, 12, order.ID)
	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/orders", recorded.path)
	assert.NotContains(t, recorded.body, "id")
	assert.Equal(t, "16", recorded.body["total"])
	extras, ok := recorded.body["extras"].([]any)
	require.True(t, ok)
	assert.Len(t, extras, 1)
}

func TestClient_ServerError(t *testing.T) {
	client, _ := newMenuServer(t, http.StatusInternalServerError, "boom")

	_, err := client.ListOrders(context.Background())

	var statusErr *remote.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.False(t, errors.Is(err, remote.ErrNotFound))
}

func TestClient_TransportError(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	client := remote.NewClient("http://menu-svc", httpClient)

	httpClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.URL.String() == "http://menu-svc/favorites"
	})).Return(nil, errors.New("connection refused")).Once()

	favorites, err := client.ListFavorites(context.Background())

	assert.Nil(t, favorites)
	assert.ErrorContains(t, err, "connection refused")
}

func TestClient_ListFoods(t *testing.T) {
	client, recorded := newMenuServer(t, http.StatusOK, `[{"id":1,"name":"Ao molho","price":"19.90"},{"id":2,"name":"Veggie","price":"21.90"}]`)

	foods, err := client.ListFoods(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/foods", recorded.path)
	assert.Equal(t, []string{"Ao molho", "Veggie"}, []string{foods[0].Name, foods[1].Name})
	assert.IsType(t, []domain.Food{}, foods)
}
