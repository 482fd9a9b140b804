package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"gorestaurant/menu-svc/internal/domain"
	"gorestaurant/menu-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), sqlMock
}

var foodRowColumns = []string{"id", "name", "description", "price", "category", "image_url", "thumbnail_url", "available"}

func TestPostgresRepository_GetFood(t *testing.T) {
	repo, sqlMock := newMockRepository(t)

	sqlMock.ExpectQuery("SELECT (.+) FROM foods WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(foodRowColumns).
			AddRow(1, "Ao molho", "Macarrão ao molho", "19.90", 1, "img", "thumb", true))
	sqlMock.ExpectQuery("SELECT id, name, value\\s+FROM extras").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value"}).
			AddRow(1, "Bacon", "1.50").
			AddRow(2, "Frango", "2.00"))

	food, err := repo.GetFood(1)
	require.NoError(t, err)

	assert.Equal(t, "Ao molho", food.Name)
	assert.Equal(t, "19.90", food.Price.StringFixed(2))
	require.Len(t, food.Extras, 2)
	assert.Equal(t, "Frango", food.Extras[1].Name)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresRepository_GetFoodNotFound(t *testing.T) {
	repo, sqlMock := newMockRepository(t)

	sqlMock.ExpectQuery("SELECT (.+) FROM foods WHERE id = \\$1").
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetFood(404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgresRepository_ListFoods(t *testing.T) {
	t.Run("returns the menu", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t)
		sqlMock.ExpectQuery("SELECT (.+) FROM foods ORDER BY id").
			WillReturnRows(sqlmock.NewRows(foodRowColumns).
				AddRow(1, "Ao molho", "", "19.90", 1, "", "", true).
				AddRow(2, "Veggie", "", "21.90", 2, "", "", true))

		foods, err := repo.ListFoods()
		require.NoError(t, err)
		assert.Len(t, foods, 2)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("cursor error is not a partial menu", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t)
		sqlMock.ExpectQuery("SELECT (.+) FROM foods ORDER BY id").
			WillReturnRows(sqlmock.NewRows(foodRowColumns).
				AddRow(1, "Ao molho", "", "19.90", 1, "", "", true).
				AddRow(2, "Veggie", "", "21.90", 2, "", "", true).
				RowError(1, assert.AnError))

		foods, err := repo.ListFoods()
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, foods)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t)
		sqlMock.ExpectQuery("SELECT (.+) FROM foods ORDER BY id").
			WillReturnRows(sqlmock.NewRows(foodRowColumns).
				AddRow("not-a-number", "Ao molho", "", "19.90", 1, "", "", true))

		foods, err := repo.ListFoods()
		assert.Error(t, err)
		assert.Nil(t, foods)
	})
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	repo, sqlMock := newMockRepository(t)
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	order := &domain.Order{
		Name:     "Ao molho",
		Price:    dec("10.00"),
		Quantity: 1,
		Total:    dec("16.00"),
		Extras: []domain.OrderExtra{
			{ID: 1, Name: "Bacon", Value: dec("3.00"), Quantity: 2},
		},
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, createdAt))
	sqlMock.ExpectExec("INSERT INTO order_extras").
		WithArgs(11, 1, "Bacon", sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	require.NoError(t, repo.CreateOrder(order))
	assert.Equal(t, 11, order.ID)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrderRollsBack(t *testing.T) {
	repo, sqlMock := newMockRepository(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("INSERT INTO orders").WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	err := repo.CreateOrder(&domain.Order{Name: "Ao molho", Price: dec("10"), Quantity: 1})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresRepository_ListOrders(t *testing.T) {
	repo, sqlMock := newMockRepository(t)
	now := time.Now()

	sqlMock.ExpectQuery("SELECT (.+) FROM orders ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "category", "image_url", "thumbnail_url", "quantity", "total", "created_at"}).
			AddRow(1, "Ao molho", "", "10.00", 1, "", "", 1, "16.00", now).
			AddRow(2, "Veggie", "", "21.90", 2, "", "", 2, "43.80", now))
	sqlMock.ExpectQuery("SELECT order_id, extra_id, name, value, quantity\\s+FROM order_extras").
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "extra_id", "name", "value", "quantity"}).
			AddRow(1, 1, "Bacon", "3.00", 2))

	orders, err := repo.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Len(t, orders[0].Extras, 1)
	assert.Equal(t, "Bacon", orders[0].Extras[0].Name)
	assert.NotNil(t, orders[1].Extras)
	assert.Empty(t, orders[1].Extras)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, sqlMock := newMockRepository(t)

	for _, table := range []string{"foods", "extras", "orders", "order_extras"} {
		sqlMock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table + " ").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func newMiniredisFavorites(t *testing.T) (*storage.RedisFavorites, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisFavorites(client), server
}

func TestRedisFavorites_Lifecycle(t *testing.T) {
	favorites, server := newMiniredisFavorites(t)
	ctx := context.Background()

	list, err := favorites.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, favorites.AddFavorite(ctx, domain.Favorite{ID: 2, Name: "Veggie", Price: dec("21.90")}))
	require.NoError(t, favorites.AddFavorite(ctx, domain.Favorite{ID: 1, Name: "Ao molho", Price: dec("19.90")}))
	assert.True(t, server.Exists("favorites"))

	list, err = favorites.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, "21.90", list[1].Price.StringFixed(2))

	removed, err := favorites.RemoveFavorite(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = favorites.RemoveFavorite(ctx, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishOrder(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)

	err := publisher.PublishOrder(context.Background(), domain.OrderEvent{
		Type: "order_placed", OrderID: 42, Quantity: 2, Total: dec("43.80"),
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	assert.Equal(t, "42", string(writer.messages[0].Key))
	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, "order_placed", event.Type)
	assert.True(t, event.Total.Equal(dec("43.80")))
}
