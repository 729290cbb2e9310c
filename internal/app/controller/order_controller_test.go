package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupOrderControllerTest(t *testing.T) (*OrderController, *gin.Engine, storage.Storage) {
	t.Helper()

	store := storage.NewMemStorage()
	orderService := service.NewOrderService(store)
	reportService := service.NewReportService(store)
	orderController := NewOrderController(orderService, reportService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return orderController, router, store
}

func TestOrderController_CreateOrder_Success(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	store.AddToCart(storage.NewCartItem{
		Owner:     storage.OwnerSession("guest-1"),
		ProductID: 1,
		Quantity:  2,
	})

	router.POST("/orders", controller.CreateOrder)

	sessionID := "guest-1"
	reqBody := CheckoutRequest{
		Total:           "599.98",
		ShippingAddress: "123 Main St, Springfield",
		SessionID:       &sessionID,
		Items: []CheckoutItemRequest{
			{ProductID: 1, Quantity: 2, Price: "299.99"},
		},
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "pending", response["status"])
	assert.Equal(t, "599.98", response["total"])

	items, ok := response["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "299.99", item["price"])

	// Checkout clears the guest cart it came from.
	assert.Empty(t, store.GetCartItems(storage.OwnerSession("guest-1")))
}

func TestOrderController_CreateOrder_EmptyItems(t *testing.T) {
	controller, router, _ := setupOrderControllerTest(t)

	router.POST("/orders", controller.CreateOrder)

	body := map[string]interface{}{
		"total":           "0.00",
		"shippingAddress": "123 Main St",
		"items":           []interface{}{},
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ORDER_EMPTY", response["error"])
}

func TestOrderController_CreateOrder_InvalidRequest(t *testing.T) {
	controller, router, _ := setupOrderControllerTest(t)

	router.POST("/orders", controller.CreateOrder)

	// Missing shippingAddress and total.
	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"productId": 1, "quantity": 1, "price": "299.99"},
		},
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "VALIDATION_INVALID_INPUT", response["error"])
}

func TestOrderController_ListOrders_All(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	userID := uint(2)
	store.CreateOrder(model.NewOrder{UserID: &userID, Total: "10.00", ShippingAddress: "A"})
	store.CreateOrder(model.NewOrder{Total: "20.00", ShippingAddress: "B"})

	router.GET("/orders", controller.ListOrders)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response, 2)
}

func TestOrderController_ListOrders_FilterByUser(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	userID := uint(2)
	store.CreateOrder(model.NewOrder{UserID: &userID, Total: "10.00", ShippingAddress: "A"})
	store.CreateOrder(model.NewOrder{Total: "20.00", ShippingAddress: "B"})

	router.GET("/orders", controller.ListOrders)

	req := httptest.NewRequest(http.MethodGet, "/orders?userId=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "10.00", response[0]["total"])
}

func TestOrderController_ListOrders_InvalidUserID(t *testing.T) {
	controller, router, _ := setupOrderControllerTest(t)

	router.GET("/orders", controller.ListOrders)

	req := httptest.NewRequest(http.MethodGet, "/orders?userId=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_GetOrder_Success(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	userID := uint(2)
	order := store.CreateOrder(model.NewOrder{UserID: &userID, Total: "299.99", ShippingAddress: "123 Main St"})
	store.CreateOrderItem(model.NewOrderItem{OrderID: order.ID, ProductID: 1, Quantity: 1, Price: "299.99"})

	router.GET("/orders/:id", controller.GetOrder)

	req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(order.ID), response["id"])

	user, ok := response["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "john_doe", user["username"])
	// Passwords never serialize.
	assert.NotContains(t, user, "password")

	items, ok := response["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestOrderController_GetOrder_NotFound(t *testing.T) {
	controller, router, _ := setupOrderControllerTest(t)

	router.GET("/orders/:id", controller.GetOrder)

	req := httptest.NewRequest(http.MethodGet, "/orders/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ORDER_NOT_FOUND", response["error"])
}

func TestOrderController_GetOrderItems_Success(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	order := store.CreateOrder(model.NewOrder{Total: "899.98", ShippingAddress: "123 Main St"})
	store.CreateOrderItem(model.NewOrderItem{OrderID: order.ID, ProductID: 1, Quantity: 2, Price: "299.99"})
	store.CreateOrderItem(model.NewOrderItem{OrderID: order.ID, ProductID: 2, Quantity: 1, Price: "299.99"})

	router.GET("/orders/:id/items", controller.GetOrderItems)

	req := httptest.NewRequest(http.MethodGet, "/orders/1/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response, 2)

	product, ok := response[0]["product"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones", product["name"])
}

func TestOrderController_GetOrderItems_OrderNotFound(t *testing.T) {
	controller, router, _ := setupOrderControllerTest(t)

	router.GET("/orders/:id/items", controller.GetOrderItems)

	req := httptest.NewRequest(http.MethodGet, "/orders/9999/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderController_UpdateOrderStatus_Success(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	store.CreateOrder(model.NewOrder{Total: "10.00", ShippingAddress: "A"})

	router.PUT("/orders/:id/status", controller.UpdateOrderStatus)

	jsonBody, _ := json.Marshal(UpdateOrderStatusRequest{Status: "shipped"})
	req := httptest.NewRequest(http.MethodPut, "/orders/1/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "shipped", response["status"])
}

func TestOrderController_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	order := store.CreateOrder(model.NewOrder{Total: "10.00", ShippingAddress: "A"})

	router.PUT("/orders/:id/status", controller.UpdateOrderStatus)

	jsonBody, _ := json.Marshal(UpdateOrderStatusRequest{Status: "teleported"})
	req := httptest.NewRequest(http.MethodPut, "/orders/1/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ORDER_INVALID_STATUS", response["error"])

	// The order is untouched.
	got, ok := store.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestOrderController_UpdateOrderStatus_NotFound(t *testing.T) {
	controller, router, _ := setupOrderControllerTest(t)

	router.PUT("/orders/:id/status", controller.UpdateOrderStatus)

	jsonBody, _ := json.Marshal(UpdateOrderStatusRequest{Status: "shipped"})
	req := httptest.NewRequest(http.MethodPut, "/orders/9999/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ORDER_NOT_FOUND", response["error"])
}

func TestOrderController_ExportOrders(t *testing.T) {
	controller, router, store := setupOrderControllerTest(t)

	userID := uint(2)
	order := store.CreateOrder(model.NewOrder{UserID: &userID, Total: "599.98", ShippingAddress: "123 Main St"})
	store.CreateOrderItem(model.NewOrderItem{OrderID: order.ID, ProductID: 1, Quantity: 2, Price: "299.99"})

	router.GET("/orders/export", controller.ExportOrders)

	req := httptest.NewRequest(http.MethodGet, "/orders/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue("Orders", "D2")
	require.NoError(t, err)
	assert.Equal(t, "599.98", total)
}
