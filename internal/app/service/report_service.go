package service

import (
	"fmt"
	"io"
	"time"

	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// ReportService builds admin-console exports.
type ReportService interface {
	// WriteOrdersXLSX streams an XLSX workbook with an Orders sheet and an
	// Order Items sheet covering every order in the store.
	WriteOrdersXLSX(w io.Writer) error
}

type reportService struct {
	store storage.Storage
}

func NewReportService(store storage.Storage) ReportService {
	return &reportService{store: store}
}

const (
	ordersSheet     = "Orders"
	orderItemsSheet = "Order Items"
)

func (s *reportService) WriteOrdersXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", ordersSheet)
	if _, err := f.NewSheet(orderItemsSheet); err != nil {
		return fmt.Errorf("create items sheet: %w", err)
	}

	orderHeaders := []interface{}{"Order ID", "User ID", "Status", "Total", "Shipping Address", "Created At"}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeaders); err != nil {
		return fmt.Errorf("write order headers: %w", err)
	}
	itemHeaders := []interface{}{"Item ID", "Order ID", "Product ID", "Product", "Quantity", "Unit Price"}
	if err := f.SetSheetRow(orderItemsSheet, "A1", &itemHeaders); err != nil {
		return fmt.Errorf("write item headers: %w", err)
	}

	orders := s.store.GetAllOrders()
	itemRow := 2
	for i, order := range orders {
		userID := ""
		if order.UserID != nil {
			userID = fmt.Sprintf("%d", *order.UserID)
		}
		row := []interface{}{
			order.ID,
			userID,
			string(order.Status),
			order.Total,
			order.ShippingAddress,
			order.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return fmt.Errorf("write order row %d: %w", order.ID, err)
		}

		for _, item := range s.store.GetOrderItems(order.ID) {
			productName := ""
			if product, ok := s.store.GetProduct(item.ProductID); ok {
				productName = product.Name
			}
			itemCells := []interface{}{
				item.ID,
				item.OrderID,
				item.ProductID,
				productName,
				item.Quantity,
				item.Price,
			}
			cell := fmt.Sprintf("A%d", itemRow)
			if err := f.SetSheetRow(orderItemsSheet, cell, &itemCells); err != nil {
				return fmt.Errorf("write item row %d: %w", item.ID, err)
			}
			itemRow++
		}
	}

	logger.Info("Orders export generated", map[string]interface{}{
		"order_count": len(orders),
	})

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
