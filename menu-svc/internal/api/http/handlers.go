package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gorestaurant/menu-svc/internal/domain"
	"gorestaurant/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Foods     service.FoodServiceInterface
	Favorites service.FavoriteServiceInterface
	Orders    service.OrderServiceInterface
	Logger    *zap.Logger
}

func NewHandler(foodSvc service.FoodServiceInterface, favoriteSvc service.FavoriteServiceInterface, orderSvc service.OrderServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Foods:     foodSvc,
		Favorites: favoriteSvc,
		Orders:    orderSvc,
		Logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/foods", h.getFoods).Methods("GET")
	r.HandleFunc("/foods/{id:[0-9]+}", h.getFood).Methods("GET")

	r.HandleFunc("/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/favorites", h.addFavorite).Methods("POST")
	r.HandleFunc("/favorites/{id:[0-9]+}", h.removeFavorite).Methods("DELETE")

	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Foods.List()
	if err != nil {
		h.Logger.Error("list foods failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if foods == nil {
		foods = []domain.Food{}
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	food, err := h.Foods.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			http.Error(w, "Food not found", http.StatusNotFound)
			return
		}
		h.Logger.Error("get food failed", zap.Int("food_id", id), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Favorites.List(r.Context())
	if err != nil {
		h.Logger.Error("list favorites failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	var favorite domain.Favorite
	if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Favorites.Add(r.Context(), &favorite); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFavorite):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.Logger.Error("add favorite failed", zap.Int("food_id", favorite.ID), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Favorites.Remove(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteNotFound):
			http.Error(w, "Favorite not found", http.StatusNotFound)
		default:
			h.Logger.Error("remove favorite failed", zap.Int("food_id", id), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.Logger.Error("create order failed", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		h.Logger.Error("list orders failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Orders.GetQRCode(id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
