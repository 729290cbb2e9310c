package controller

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/errors"
	"github.com/shopflow/shopflow-backend/internal/middleware"
)

type OrderController struct {
	orderService  service.OrderService
	reportService service.ReportService
}

func NewOrderController(orderService service.OrderService, reportService service.ReportService) *OrderController {
	return &OrderController{orderService: orderService, reportService: reportService}
}

type CheckoutItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Price     string `json:"price" binding:"required"`
}

type CheckoutRequest struct {
	UserID          *uint                 `json:"userId"`
	Status          string                `json:"status"`
	Total           string                `json:"total" binding:"required"`
	ShippingAddress string                `json:"shippingAddress" binding:"required"`
	SessionID       *string               `json:"sessionId"`
	Items           []CheckoutItemRequest `json:"items" binding:"required,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder places an order from the submitted cart lines and clears the
// matching cart.
// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	in := service.CheckoutInput{
		UserID:          req.UserID,
		Status:          model.OrderStatus(req.Status),
		Total:           req.Total,
		ShippingAddress: req.ShippingAddress,
		SessionID:       req.SessionID,
	}
	// A guest checkout with no explicit session falls back to the cookie
	// session so the cart it came from still gets cleared.
	if in.SessionID == nil {
		if sessionID, ok := middleware.GetSessionID(c); ok {
			in.SessionID = &sessionID
		}
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, service.CheckoutItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	detail, err := ctrl.orderService.Checkout(in)
	if err != nil {
		if stderrors.Is(err, service.ErrEmptyOrder) {
			errors.BadRequest(c, errors.OrderEmpty, "Order must contain at least one item")
			return
		}
		log.Error("Checkout failed", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// ListOrders returns every order, or one user's orders when the userId query
// parameter is set.
// GET /api/orders?userId=...
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	var userID *uint
	if userStr := c.Query("userId"); userStr != "" {
		parsed, err := strconv.ParseUint(userStr, 10, 32)
		if err != nil {
			errors.BadRequest(c, errors.ValidationInvalidID, "Invalid user ID")
			return
		}
		id := uint(parsed)
		userID = &id
	}

	c.JSON(http.StatusOK, ctrl.orderService.ListOrders(userID))
}

// GetOrder returns one order with its items and user.
// GET /api/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := ctrl.orderService.GetOrder(id)
	if err != nil {
		errors.NotFound(c, errors.OrderNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetOrderItems returns the line items of one order, each enriched with its
// product.
// GET /api/orders/:id/items
func (ctrl *OrderController) GetOrderItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := ctrl.orderService.GetOrder(id); err != nil {
		errors.NotFound(c, errors.OrderNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, ctrl.orderService.GetOrderItems(id))
}

// UpdateOrderStatus moves an order to a new fulfillment status.
// PUT /api/orders/:id/status
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	order, err := ctrl.orderService.UpdateStatus(id, model.OrderStatus(req.Status))
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidOrderStatus) {
			errors.BadRequest(c, errors.OrderInvalidStatus, "Invalid order status")
			return
		}
		if stderrors.Is(err, service.ErrOrderNotFound) {
			errors.NotFound(c, errors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to update order status", err, map[string]interface{}{
			"order_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, order)
}

// ExportOrders streams every order as an XLSX workbook for the admin console.
// GET /api/orders/export
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var buf bytes.Buffer
	if err := ctrl.reportService.WriteOrdersXLSX(&buf); err != nil {
		log.Error("Failed to generate orders export", err, nil)
		errors.InternalError(c, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
