package storage

import "github.com/shopflow/shopflow-backend/internal/app/model"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// seed populates the demo dataset: four categories, four products, one
// admin and one regular user. It runs under the constructor, before the
// engine is shared, so it uses the unlocked table primitives directly.
func (s *MemStorage) seed() {
	electronics := s.categories.insert(func(id uint) model.Category {
		return model.Category{ID: id, Name: "Electronics", Description: strPtr("Latest tech & gadgets")}
	})
	fashion := s.categories.insert(func(id uint) model.Category {
		return model.Category{ID: id, Name: "Fashion", Description: strPtr("Trendy apparel")}
	})
	s.categories.insert(func(id uint) model.Category {
		return model.Category{ID: id, Name: "Home", Description: strPtr("Decor & furniture")}
	})
	s.categories.insert(func(id uint) model.Category {
		return model.Category{ID: id, Name: "Sports", Description: strPtr("Fitness & outdoor")}
	})

	seedProducts := []struct {
		name, description, price, imageURL string
		categoryID                         uint
		stock                              int
	}{
		{
			name:        "Wireless Headphones",
			description: "Premium noise-canceling wireless headphones with superior sound quality",
			price:       "129.99",
			categoryID:  electronics.ID,
			imageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			stock:       24,
		},
		{
			name:        "Smart Phone Pro",
			description: "Latest generation smartphone with advanced features and 5G connectivity",
			price:       "699.99",
			categoryID:  electronics.ID,
			imageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			stock:       12,
		},
		{
			name:        "Designer Watch",
			description: "Luxury timepiece with premium leather strap and Swiss movement",
			price:       "299.99",
			categoryID:  fashion.ID,
			imageURL:    "https://images.unsplash.com/photo-1524592094714-0f0654e20314?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			stock:       8,
		},
		{
			name:        "Professional Laptop",
			description: "High-performance laptop for professionals with 16GB RAM and 512GB SSD",
			price:       "1299.99",
			categoryID:  electronics.ID,
			imageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			stock:       6,
		},
	}
	for _, p := range seedProducts {
		categoryID := p.categoryID
		s.products.insert(func(id uint) model.Product {
			return model.Product{
				ID:          id,
				Name:        p.name,
				Description: p.description,
				Price:       p.price,
				CategoryID:  &categoryID,
				ImageURL:    p.imageURL,
				Stock:       p.stock,
				IsActive:    true,
			}
		})
	}

	s.users.insert(func(id uint) model.User {
		return model.User{
			ID:        id,
			Username:  "admin",
			Password:  "admin123",
			Email:     "admin@shopflow.com",
			FirstName: "Admin",
			LastName:  "User",
			IsAdmin:   true,
		}
	})
	s.users.insert(func(id uint) model.User {
		return model.User{
			ID:        id,
			Username:  "john_doe",
			Password:  "password123",
			Email:     "john@example.com",
			FirstName: "John",
			LastName:  "Doe",
			IsAdmin:   false,
		}
	})
}
