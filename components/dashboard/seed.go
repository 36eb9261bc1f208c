package dashboard

import "time"

const placeholderImage = "/placeholder.svg"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DefaultCatalog returns the catalog the dashboard starts with when no seed file is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		Products:  DefaultProducts(),
		Customers: DefaultCustomers(),
		Orders:    DefaultOrders(),
	}
}

// DefaultProducts returns the seeded products. Names and descriptions are English with pt overrides.
func DefaultProducts() []Product {
	return []Product{
		{
			ID: "1", Name: "Premium Smartphone", NameLocalized: map[string]string{"pt": "Smartphone Premium"},
			Price: 1299.99, Category: CategoryElectronics, Status: StockInStock, Stock: 45, SKU: "SP-1001",
			Description:          "Latest generation smartphone with high-resolution camera and powerful processor.",
			DescriptionLocalized: map[string]string{"pt": "Smartphone de última geração com câmera de alta resolução e processador potente."},
			Image:                placeholderImage,
		},
		{
			ID: "2", Name: "Ultra Laptop", NameLocalized: map[string]string{"pt": "Notebook Ultra"},
			Price: 2499.99, Category: CategoryElectronics, Status: StockInStock, Stock: 28, SKU: "NB-2002",
			Description:          "Ultra-thin laptop with high-definition display and long-lasting battery.",
			DescriptionLocalized: map[string]string{"pt": "Notebook ultrafino com tela de alta definição e bateria de longa duração."},
			Image:                placeholderImage,
		},
		{
			ID: "3", Name: "Wireless Headphones", NameLocalized: map[string]string{"pt": "Fones Sem Fio"},
			Price: 199.99, Category: CategoryElectronics, Status: StockLowStock, Stock: 10, SKU: "HP-3003",
			Description:          "Wireless headphones with noise cancellation and exceptional sound quality.",
			DescriptionLocalized: map[string]string{"pt": "Fones de ouvido sem fio com cancelamento de ruído e qualidade de som excepcional."},
			Image:                placeholderImage,
		},
		{
			ID: "4", Name: "Premium T-Shirt", NameLocalized: map[string]string{"pt": "Camiseta Premium"},
			Price: 49.99, Category: CategoryClothing, Status: StockInStock, Stock: 120, SKU: "TS-4004",
			Description:          "High-quality cotton t-shirt with modern design.",
			DescriptionLocalized: map[string]string{"pt": "Camiseta de algodão de alta qualidade com design moderno."},
			Image:                placeholderImage,
		},
		{
			ID: "5", Name: "Jeans", NameLocalized: map[string]string{"pt": "Calça Jeans"},
			Price: 89.99, Category: CategoryClothing, Status: StockInStock, Stock: 75, SKU: "JN-5005",
			Description:          "Durable and comfortable jeans with classic style.",
			DescriptionLocalized: map[string]string{"pt": "Calça jeans durável e confortável com estilo clássico."},
			Image:                placeholderImage,
		},
		{
			ID: "6", Name: "Modern Sofa", NameLocalized: map[string]string{"pt": "Sofá Moderno"},
			Price: 899.99, Category: CategoryFurniture, Status: StockOutOfStock, Stock: 0, SKU: "SF-6006",
			Description:          "Modern sofa with high-quality upholstery and elegant design.",
			DescriptionLocalized: map[string]string{"pt": "Sofá moderno com estofamento de alta qualidade e design elegante."},
			Image:                placeholderImage,
		},
		{
			ID: "7", Name: "Dining Table", NameLocalized: map[string]string{"pt": "Mesa de Jantar"},
			Price: 599.99, Category: CategoryFurniture, Status: StockLowStock, Stock: 5, SKU: "DT-7007",
			Description:          "Spacious dining table with natural wood finish.",
			DescriptionLocalized: map[string]string{"pt": "Mesa de jantar espaçosa com acabamento em madeira natural."},
			Image:                placeholderImage,
		},
		{
			ID: "8", Name: "Elegant Watch", NameLocalized: map[string]string{"pt": "Relógio Elegante"},
			Price: 299.99, Category: CategoryAccessories, Status: StockInStock, Stock: 30, SKU: "WT-8008",
			Description:          "Elegant watch with leather strap and precise movement.",
			DescriptionLocalized: map[string]string{"pt": "Relógio elegante com pulseira de couro e movimento preciso."},
			Image:                placeholderImage,
		},
	}
}

// DefaultCustomers returns the seeded customers.
func DefaultCustomers() []Customer {
	return []Customer{
		{
			ID: "1", Name: "Sophia Anderson", Email: "sophia.anderson@example.com", Status: CustomerActive,
			Orders: 12, TotalSpent: 2450.75, LastOrder: day(2023, time.June, 15), JoinDate: day(2022, time.March, 10),
			Country: "United States", CountryLocalized: map[string]string{"pt": "Estados Unidos"}, Phone: "+1 (555) 123-4567",
		},
		{
			ID: "2", Name: "James Wilson", Email: "james.wilson@example.com", Status: CustomerActive,
			Orders: 8, TotalSpent: 1320.5, LastOrder: day(2023, time.June, 10), JoinDate: day(2022, time.May, 15),
			Country: "Canada", CountryLocalized: map[string]string{"pt": "Canadá"}, Phone: "+1 (555) 234-5678",
		},
		{
			ID: "3", Name: "Emma Martinez", Email: "emma.martinez@example.com", Status: CustomerInactive,
			Orders: 3, TotalSpent: 599.99, LastOrder: day(2023, time.May, 20), JoinDate: day(2022, time.July, 5),
			Country: "Mexico", CountryLocalized: map[string]string{"pt": "México"}, Phone: "+52 (555) 345-6789",
		},
		{
			ID: "4", Name: "Lucas Thompson", Email: "lucas.thompson@example.com", Status: CustomerActive,
			Orders: 5, TotalSpent: 875.25, LastOrder: day(2023, time.June, 5), JoinDate: day(2022, time.September, 20),
			Country: "United Kingdom", CountryLocalized: map[string]string{"pt": "Reino Unido"}, Phone: "+44 (555) 456-7890",
		},
		{
			ID: "5", Name: "Olivia Johnson", Email: "olivia.johnson@example.com", Status: CustomerActive,
			Orders: 15, TotalSpent: 3250.0, LastOrder: day(2023, time.June, 18), JoinDate: day(2021, time.November, 15),
			Country: "Australia", CountryLocalized: map[string]string{"pt": "Austrália"}, Phone: "+61 (555) 567-8901",
		},
		{
			ID: "6", Name: "Noah Garcia", Email: "noah.garcia@example.com", Status: CustomerInactive,
			Orders: 2, TotalSpent: 350.5, LastOrder: day(2023, time.April, 10), JoinDate: day(2023, time.February, 5),
			Country: "Spain", CountryLocalized: map[string]string{"pt": "Espanha"}, Phone: "+34 (555) 678-9012",
		},
		{
			ID: "7", Name: "Ava Rodriguez", Email: "ava.rodriguez@example.com", Status: CustomerActive,
			Orders: 7, TotalSpent: 1150.75, LastOrder: day(2023, time.June, 12), JoinDate: day(2022, time.June, 10),
			Country: "Brazil", CountryLocalized: map[string]string{"pt": "Brasil"}, Phone: "+55 (555) 789-0123",
		},
		{
			ID: "8", Name: "Ethan Brown", Email: "ethan.brown@example.com", Status: CustomerActive,
			Orders: 9, TotalSpent: 1875.25, LastOrder: day(2023, time.June, 8), JoinDate: day(2022, time.April, 15),
			Country: "France", CountryLocalized: map[string]string{"pt": "França"}, Phone: "+33 (555) 890-1234",
		},
	}
}

// DefaultOrders returns the seeded orders.
func DefaultOrders() []Order {
	return []Order{
		{ID: "1", OrderNumber: "#ORD-2023-1001", Customer: "Sophia Anderson", Date: day(2023, time.June, 15), Total: 299.99, Status: OrderDelivered, PaymentStatus: PaymentPaid, Items: 3},
		{ID: "2", OrderNumber: "#ORD-2023-1002", Customer: "James Wilson", Date: day(2023, time.June, 16), Total: 149.5, Status: OrderShipped, PaymentStatus: PaymentPaid, Items: 2},
		{ID: "3", OrderNumber: "#ORD-2023-1003", Customer: "Emma Martinez", Date: day(2023, time.June, 17), Total: 599.99, Status: OrderProcessing, PaymentStatus: PaymentPaid, Items: 1},
		{ID: "4", OrderNumber: "#ORD-2023-1004", Customer: "Lucas Thompson", Date: day(2023, time.June, 18), Total: 89.95, Status: OrderPending, PaymentStatus: PaymentPending, Items: 2},
		{ID: "5", OrderNumber: "#ORD-2023-1005", Customer: "Olivia Johnson", Date: day(2023, time.June, 19), Total: 349.99, Status: OrderDelivered, PaymentStatus: PaymentPaid, Items: 4},
		{ID: "6", OrderNumber: "#ORD-2023-1006", Customer: "Noah Garcia", Date: day(2023, time.June, 20), Total: 199.95, Status: OrderCancelled, PaymentStatus: PaymentFailed, Items: 3},
		{ID: "7", OrderNumber: "#ORD-2023-1007", Customer: "Ava Rodriguez", Date: day(2023, time.June, 21), Total: 129.99, Status: OrderShipped, PaymentStatus: PaymentPaid, Items: 2},
		{ID: "8", OrderNumber: "#ORD-2023-1008", Customer: "Ethan Brown", Date: day(2023, time.June, 22), Total: 499.99, Status: OrderProcessing, PaymentStatus: PaymentPaid, Items: 1},
	}
}
