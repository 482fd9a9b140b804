package storage

import (
	"database/sql"
	"fmt"

	"gorestaurant/menu-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const foodColumns = `id, name, COALESCE(description, ''), price, COALESCE(category, 0),
	COALESCE(image_url, ''), COALESCE(thumbnail_url, ''), available`

func (r *PostgresRepository) GetFood(id int) (*domain.Food, error) {
	var food domain.Food
	err := r.DB.QueryRow("SELECT "+foodColumns+" FROM foods WHERE id = $1", id).
		Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.Category,
			&food.ImageURL, &food.ThumbnailURL, &food.Available)
	if err != nil {
		return nil, err
	}

	extras, err := r.listExtras(food.ID)
	if err != nil {
		return nil, err
	}
	food.Extras = extras
	return &food, nil
}

func (r *PostgresRepository) listExtras(foodID int) ([]domain.Extra, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, value
		FROM extras
		WHERE food_id = $1
		ORDER BY id`, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []domain.Extra{}
	for rows.Next() {
		var extra domain.Extra
		if err := rows.Scan(&extra.ID, &extra.Name, &extra.Value); err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}
	return extras, rows.Err()
}

// ListFoods returns the menu without extras; the detail lookup loads them.
func (r *PostgresRepository) ListFoods() ([]domain.Food, error) {
	rows, err := r.DB.Query("SELECT " + foodColumns + " FROM foods ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.Food
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.Category,
			&food.ImageURL, &food.ThumbnailURL, &food.Available); err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (name, description, price, category, image_url, thumbnail_url, quantity, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, order.Name, order.Description, order.Price, order.Category, order.ImageURL, order.ThumbnailURL,
		order.Quantity, order.Total).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, extra := range order.Extras {
		if _, err := tx.Exec(`
			INSERT INTO order_extras (order_id, extra_id, name, value, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, extra.ID, extra.Name, extra.Value, extra.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `id, name, COALESCE(description, ''), price, COALESCE(category, 0),
	COALESCE(image_url, ''), COALESCE(thumbnail_url, ''), quantity, total, created_at`

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow("SELECT "+orderColumns+" FROM orders WHERE id = $1", id).
		Scan(&order.ID, &order.Name, &order.Description, &order.Price, &order.Category, &order.ImageURL,
			&order.ThumbnailURL, &order.Quantity, &order.Total, &order.CreatedAt); err != nil {
		return nil, err
	}

	extras, err := r.orderExtras([]int{order.ID})
	if err != nil {
		return nil, err
	}
	order.Extras = extras[order.ID]
	if order.Extras == nil {
		order.Extras = []domain.OrderExtra{}
	}
	return &order, nil
}

// ListOrders returns orders oldest first, the order they were placed in.
func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query("SELECT " + orderColumns + " FROM orders ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Name, &order.Description, &order.Price, &order.Category,
			&order.ImageURL, &order.ThumbnailURL, &order.Quantity, &order.Total, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	extras, err := r.orderExtras(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Extras = extras[orders[i].ID]
		if orders[i].Extras == nil {
			orders[i].Extras = []domain.OrderExtra{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) orderExtras(orderIDs []int) (map[int][]domain.OrderExtra, error) {
	rows, err := r.DB.Query(`
		SELECT order_id, extra_id, name, value, quantity
		FROM order_extras
		WHERE order_id = ANY($1)
		ORDER BY order_id, extra_id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[int][]domain.OrderExtra, len(orderIDs))
	for rows.Next() {
		var orderID int
		var extra domain.OrderExtra
		if err := rows.Scan(&orderID, &extra.ID, &extra.Name, &extra.Value, &extra.Quantity); err != nil {
			return nil, err
		}
		byOrder[orderID] = append(byOrder[orderID], extra)
	}
	return byOrder, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			category INT,
			image_url TEXT,
			thumbnail_url TEXT,
			available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS extras (
			id SERIAL PRIMARY KEY,
			food_id INT NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			value NUMERIC(10,2) NOT NULL CHECK (value >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			category INT,
			image_url TEXT,
			thumbnail_url TEXT,
			quantity INT NOT NULL CHECK (quantity >= 1),
			total NUMERIC(12,2) NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_extras (
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			extra_id INT NOT NULL,
			name TEXT NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			PRIMARY KEY (order_id, extra_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
