// Package seed 提供演示商店的内置数据集：商品目录、示例用户、订单与评论。
// 订单/评论集合在存储为空或损坏时也用它兜底。
package seed

import (
	"time"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// Products 返回商品目录数据集
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "ethiopian-yirgacheffe",
			Name:        "Ethiopian Yirgacheffe",
			Description: "A delicate, tea-like coffee from Ethiopia with bright acidity, and complex flavor notes of lemon, bergamot and blueberry. This light roast brings out the floral and citrus characteristics that Yirgacheffe is known for.",
			Price:       models.NewMoneyFromFloat(16.99),
			ImageURL:    "https://images.unsplash.com/photo-1559525839-b184a4d1dc44?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Ethiopia",
			RoastLevel:  "Light",
			Rating:      4.7,
			ReviewCount: 124,
		},
		{
			ID:          "colombian-supremo",
			Name:        "Colombian Supremo",
			Description: "A classic Colombian coffee with a rich, full body and prominent caramel sweetness. Notes of toasted nuts, chocolate and a hint of cherry create a perfectly balanced cup with a smooth, clean finish.",
			Price:       models.NewMoneyFromFloat(15.49),
			ImageURL:    "https://images.unsplash.com/photo-1572286258217-215cf8e910f7?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Colombia",
			RoastLevel:  "Medium",
			Rating:      4.5,
			ReviewCount: 98,
		},
		{
			ID:          "sumatra-mandheling",
			Name:        "Sumatra Mandheling",
			Description: "A full-bodied, earthy Indonesian coffee with low acidity and complex flavors of dark chocolate, cedar, and a subtle spice finish. The unique processing method gives this coffee its characteristic richness and depth.",
			Price:       models.NewMoneyFromFloat(17.99),
			ImageURL:    "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Indonesia",
			RoastLevel:  "Dark",
			Rating:      4.6,
			ReviewCount: 86,
		},
		{
			ID:          "guatemala-antigua",
			Name:        "Guatemala Antigua",
			Description: "From the high valleys surrounded by volcanoes comes this elegant coffee with a crisp acidity, medium body and complex flavors of cocoa, cinnamon, and orange zest. The rich volcanic soil gives this coffee its distinctive character.",
			Price:       models.NewMoneyFromFloat(16.49),
			ImageURL:    "https://images.unsplash.com/photo-1542879568-4f6eda4e3cff?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Guatemala",
			RoastLevel:  "Medium",
			Rating:      4.3,
			ReviewCount: 65,
		},
		{
			ID:          "costa-rica-tarrazu",
			Name:        "Costa Rica Tarrazu",
			Description: "A well-balanced coffee from the Tarrazu region, known for producing some of Costa Rica's finest beans. Bright, clean acidity with notes of honey, citrus, and a smooth chocolate finish.",
			Price:       models.NewMoneyFromFloat(16.99),
			ImageURL:    "https://images.unsplash.com/photo-1498804103079-a6351b050096?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Costa Rica",
			RoastLevel:  "Medium",
			Rating:      4.4,
			ReviewCount: 72,
		},
		{
			ID:          "morning-blend",
			Name:        "Morning Blend",
			Description: "Start your day with this smooth, balanced blend combining Central and South American coffees. Light to medium roasted to create a bright, crisp cup with notes of caramel, citrus, and milk chocolate. Perfect for your morning routine.",
			Price:       models.NewMoneyFromFloat(14.99),
			ImageURL:    "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "blend",
			Origin:      "Central & South America",
			RoastLevel:  "Medium",
			Rating:      4.2,
			ReviewCount: 112,
		},
		{
			ID:          "midnight-express",
			Name:        "Midnight Express",
			Description: "A bold, dark roasted blend of Indonesian and African coffees that delivers a rich, intense cup with robust flavors of dark chocolate, smoke, and a hint of spice. The perfect choice for those who love a strong, full-bodied coffee.",
			Price:       models.NewMoneyFromFloat(15.99),
			ImageURL:    "https://images.unsplash.com/photo-1516440523425-51d549118dbe?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "blend",
			Origin:      "Indonesia & Africa",
			RoastLevel:  "Dark",
			Rating:      4.8,
			ReviewCount: 136,
		},
		{
			ID:          "espresso-classico",
			Name:        "Espresso Classico",
			Description: "A traditional Italian-style espresso blend with a perfect balance of sweetness, acidity, and bitterness. This medium-dark roast produces a rich crema and delivers notes of dark chocolate, caramelized sugar, and a nuanced fruit finish.",
			Price:       models.NewMoneyFromFloat(16.49),
			ImageURL:    "https://images.unsplash.com/photo-1504630083234-14187a9df0f5?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "espresso",
			Origin:      "South America & Africa",
			RoastLevel:  "Medium-Dark",
			Rating:      4.9,
			ReviewCount: 184,
		},
		{
			ID:          "swiss-water-decaf",
			Name:        "Swiss Water Decaf",
			Description: "A naturally decaffeinated coffee using the chemical-free Swiss Water Process that preserves the coffee's original flavors. This Colombian medium roast offers a smooth body with notes of caramel, cocoa, and subtle nutty undertones.",
			Price:       models.NewMoneyFromFloat(17.49),
			ImageURL:    "https://images.unsplash.com/photo-1442975631115-c4f7b05b8a2c?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "decaf",
			Origin:      "Colombia",
			RoastLevel:  "Medium",
			Rating:      4.0,
			ReviewCount: 58,
		},
		{
			ID:          "brazil-santos",
			Name:        "Brazil Santos",
			Description: "A smooth, mild coffee from Brazil's most famous coffee-growing region. Medium body with low acidity and pleasing notes of milk chocolate, nuts and a slight sweetness reminiscent of caramel or honey.",
			Price:       models.NewMoneyFromFloat(14.99),
			ImageURL:    "https://images.unsplash.com/photo-1535403418759-d458c4a43a59?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Brazil",
			RoastLevel:  "Medium",
			Rating:      4.2,
			ReviewCount: 76,
		},
		{
			ID:          "kenya-aa",
			Name:        "Kenya AA",
			Description: "A bright and vibrant coffee from Kenya with a full body and distinctive wine-like acidity. Complex flavors include black currant, cranberry, and a sweet tomato-like note with a clean, lingering finish.",
			Price:       models.NewMoneyFromFloat(18.99),
			ImageURL:    "https://images.unsplash.com/photo-1447933601403-0c6688de566e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "single-origin",
			Origin:      "Kenya",
			RoastLevel:  "Medium",
			Rating:      4.7,
			ReviewCount: 92,
		},
		{
			ID:          "french-press-kit",
			Name:        "French Press Kit",
			Description: "Complete coffee brewing kit including a 34oz French press with durable glass carafe and stainless steel frame, a manual coffee grinder with adjustable settings, and a 12oz bag of our Midnight Express blend.",
			Price:       models.NewMoneyFromFloat(59.99),
			ImageURL:    "https://images.unsplash.com/photo-1519082274554-1ca27038140f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
			Category:    "equipment",
			Rating:      4.6,
			ReviewCount: 43,
		},
	}
}

// SeedUser 示例用户（密码为明文，入库时哈希）
type SeedUser struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Addresses models.AddressList
	CreatedAt time.Time
}

// Users 返回示例用户数据集
func Users() []SeedUser {
	return []SeedUser{
		{
			Username:  "johndoe",
			Email:     "john.doe@example.com",
			Password:  "password123",
			FirstName: "John",
			LastName:  "Doe",
			Phone:     "555-123-4567",
			Addresses: models.AddressList{
				{Street: "123 Main St", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA", IsDefault: true},
			},
			CreatedAt: day("2022-01-15"),
		},
		{
			Username:  "janedoe",
			Email:     "jane.doe@example.com",
			Password:  "securepass456",
			FirstName: "Jane",
			LastName:  "Doe",
			Phone:     "555-987-6543",
			Addresses: models.AddressList{
				{Street: "456 Park Ave", City: "New York", State: "NY", ZipCode: "10001", Country: "USA", IsDefault: true},
			},
			CreatedAt: day("2022-03-20"),
		},
		{
			Username:  "bobsmith",
			Email:     "bob.smith@example.com",
			Password:  "bobpassword789",
			FirstName: "Bob",
			LastName:  "Smith",
			Phone:     "555-456-7890",
			Addresses: models.AddressList{
				{Street: "789 Oak St", City: "San Francisco", State: "CA", ZipCode: "94105", Country: "USA", IsDefault: true},
			},
			CreatedAt: day("2022-05-10"),
		},
	}
}

// Orders 返回示例订单数据集
func Orders() []models.Order {
	seattle := models.Address{Street: "123 Main St", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA"}
	newYork := models.Address{Street: "456 Park Ave", City: "New York", State: "NY", ZipCode: "10001", Country: "USA"}

	return []models.Order{
		{
			ID:     "ORD-1001",
			UserID: "1",
			Items: []models.OrderItem{
				{
					ProductID: "ethiopian-yirgacheffe",
					Name:      "Ethiopian Yirgacheffe",
					Quantity:  2,
					UnitPrice: models.NewMoneyFromFloat(16.99),
					ImageURL:  "https://images.unsplash.com/photo-1559525839-b184a4d1dc44?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
				},
				{
					ProductID: "french-press-kit",
					Name:      "French Press Kit",
					Quantity:  1,
					UnitPrice: models.NewMoneyFromFloat(59.99),
					ImageURL:  "https://images.unsplash.com/photo-1519082274554-1ca27038140f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
				},
			},
			Status:          constants.OrderStatusDelivered,
			Total:           models.NewMoneyFromFloat(93.97),
			ShippingAddress: seattle,
			BillingAddress:  seattle,
			PaymentMethod: models.PaymentMethod{
				Type:           constants.PaymentMethodCreditCard,
				LastFourDigits: "4242",
				ExpiryDate:     "09/25",
				CardholderName: "John Doe",
			},
			CreatedAt:   day("2023-09-15"),
			UpdatedAt:   day("2023-09-15"),
			ShippedAt:   dayPtr("2023-09-16"),
			DeliveredAt: dayPtr("2023-09-18"),
		},
		{
			ID:     "ORD-1002",
			UserID: "1",
			Items: []models.OrderItem{
				{
					ProductID: "midnight-express",
					Name:      "Midnight Express",
					Quantity:  3,
					UnitPrice: models.NewMoneyFromFloat(15.99),
					ImageURL:  "https://images.unsplash.com/photo-1516440523425-51d549118dbe?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
				},
			},
			Status:          constants.OrderStatusShipped,
			Total:           models.NewMoneyFromFloat(47.97),
			ShippingAddress: seattle,
			BillingAddress:  seattle,
			PaymentMethod:   models.PaymentMethod{Type: constants.PaymentMethodPaypal},
			CreatedAt:       day("2023-10-10"),
			UpdatedAt:       day("2023-10-10"),
			ShippedAt:       dayPtr("2023-10-12"),
		},
		{
			ID:     "ORD-1003",
			UserID: "2",
			Items: []models.OrderItem{
				{
					ProductID: "espresso-classico",
					Name:      "Espresso Classico",
					Quantity:  2,
					UnitPrice: models.NewMoneyFromFloat(16.49),
					ImageURL:  "https://images.unsplash.com/photo-1504630083234-14187a9df0f5?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
				},
				{
					ProductID: "colombia-supremo",
					Name:      "Colombian Supremo",
					Quantity:  1,
					UnitPrice: models.NewMoneyFromFloat(15.49),
					ImageURL:  "https://images.unsplash.com/photo-1572286258217-215cf8e910f7?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MTF9&auto=format&fit=crop&w=600&q=80",
				},
			},
			Status:          constants.OrderStatusProcessing,
			Total:           models.NewMoneyFromFloat(48.47),
			ShippingAddress: newYork,
			BillingAddress:  newYork,
			PaymentMethod: models.PaymentMethod{
				Type:           constants.PaymentMethodCreditCard,
				LastFourDigits: "5678",
				ExpiryDate:     "11/24",
				CardholderName: "Jane Doe",
			},
			CreatedAt: day("2023-10-20"),
			UpdatedAt: day("2023-10-20"),
		},
	}
}

// Reviews 返回示例评论数据集
func Reviews() []models.Review {
	return []models.Review{
		{
			ID:           "101",
			ProductID:    "ethiopian-yirgacheffe",
			UserID:       "1",
			UserName:     "John Doe",
			Rating:       5,
			Title:        "Best Light Roast I've Tried",
			Comment:      "This coffee has an amazing floral aroma with hints of citrus. The flavor is incredibly bright and clean. I brew it using a pour-over method and it's perfect every morning!",
			CreatedAt:    day("2023-08-15"),
			HelpfulCount: 24,
		},
		{
			ID:           "102",
			ProductID:    "ethiopian-yirgacheffe",
			UserID:       "2",
			UserName:     "Jane Doe",
			Rating:       4,
			Title:        "Delightfully Bright",
			Comment:      "I love the citrusy notes in this coffee. It's not quite as intense as I expected, hence the 4 stars, but it's still one of my favorites for morning brewing.",
			CreatedAt:    day("2023-09-02"),
			HelpfulCount: 16,
		},
		{
			ID:           "103",
			ProductID:    "ethiopian-yirgacheffe",
			UserID:       "3",
			UserName:     "Bob Smith",
			Rating:       5,
			Title:        "A Tea Lover's Coffee",
			Comment:      "As someone who typically prefers tea, this coffee was a revelation! The delicate floral notes and subtle sweetness make it approachable even for non-coffee enthusiasts.",
			CreatedAt:    day("2023-10-10"),
			HelpfulCount: 12,
		},
		{
			ID:           "104",
			ProductID:    "colombian-supremo",
			UserID:       "3",
			UserName:     "Bob Smith",
			Rating:       5,
			Title:        "Perfect Balance",
			Comment:      "This Colombian coffee has the perfect balance of body and acidity. The caramel and chocolate notes are pronounced but not overwhelming. Great for everyday drinking.",
			CreatedAt:    day("2023-09-15"),
			HelpfulCount: 18,
		},
		{
			ID:           "105",
			ProductID:    "colombian-supremo",
			UserID:       "1",
			UserName:     "John Doe",
			Rating:       4,
			Title:        "Solid Choice",
			Comment:      "A very good medium roast with consistent quality. I use it primarily for my daily French press brew and it never disappoints. The cherry notes are subtle but noticeable.",
			CreatedAt:    day("2023-08-20"),
			HelpfulCount: 9,
		},
		{
			ID:           "106",
			ProductID:    "midnight-express",
			UserID:       "2",
			UserName:     "Jane Doe",
			Rating:       5,
			Title:        "Rich and Bold",
			Comment:      "If you love dark roast, this is the coffee for you. Incredibly rich flavor with a smoky finish that lingers. Perfect for those mornings when you need a serious caffeine kick!",
			CreatedAt:    day("2023-07-25"),
			HelpfulCount: 32,
		},
		{
			ID:           "107",
			ProductID:    "midnight-express",
			UserID:       "1",
			UserName:     "John Doe",
			Rating:       5,
			Title:        "My Go-To Dark Roast",
			Comment:      "The chocolate notes in this blend are incredible. It makes an amazing espresso with thick crema and deep flavor. Also excellent for cold brew during summer months.",
			CreatedAt:    day("2023-08-05"),
			HelpfulCount: 21,
		},
		{
			ID:           "108",
			ProductID:    "midnight-express",
			UserID:       "3",
			UserName:     "Bob Smith",
			Rating:       4,
			Title:        "Strong but Not Bitter",
			Comment:      "This dark roast manages to be strong and flavorful without the bitterness that often comes with darker coffees. Very impressed with the balance.",
			CreatedAt:    day("2023-09-18"),
			HelpfulCount: 14,
		},
		{
			ID:           "109",
			ProductID:    "espresso-classico",
			UserID:       "1",
			UserName:     "John Doe",
			Rating:       5,
			Title:        "Barista Quality at Home",
			Comment:      "This espresso blend makes me feel like a professional barista. The crema is perfect and the flavor profile is exactly what you'd expect from a high-end café. Worth every penny!",
			CreatedAt:    day("2023-06-12"),
			HelpfulCount: 45,
		},
		{
			ID:           "110",
			ProductID:    "espresso-classico",
			UserID:       "2",
			UserName:     "Jane Doe",
			Rating:       5,
			Title:        "Exceptional Espresso",
			Comment:      "The balance of this espresso is remarkable. It produces a sweet, rich shot with notes of dark chocolate and a hint of fruit. Makes incredible lattes too!",
			CreatedAt:    day("2023-07-30"),
			HelpfulCount: 28,
		},
		{
			ID:           "111",
			ProductID:    "french-press-kit",
			UserID:       "3",
			UserName:     "Bob Smith",
			Rating:       4,
			Title:        "Great Starter Kit",
			Comment:      "This kit has everything you need to get started with French press brewing. The grinder is decent quality and the French press itself is sturdy and well-designed.",
			CreatedAt:    day("2023-08-22"),
			HelpfulCount: 11,
		},
		{
			ID:           "112",
			ProductID:    "french-press-kit",
			UserID:       "2",
			UserName:     "Jane Doe",
			Rating:       5,
			Title:        "Perfect Gift for Coffee Lovers",
			Comment:      "I bought this as a gift for my brother who was looking to upgrade from instant coffee. He absolutely loves it! The included coffee is excellent and the instructions were clear for a beginner.",
			CreatedAt:    day("2023-09-05"),
			HelpfulCount: 16,
		},
		{
			ID:           "113",
			ProductID:    "sumatra-mandheling",
			UserID:       "1",
			UserName:     "John Doe",
			Rating:       4,
			Title:        "Earthy and Complex",
			Comment:      "This Sumatran coffee has a distinctive earthy quality that's quite unique. It's definitely not for everyone, but if you enjoy full-bodied, low-acid coffees, it's excellent.",
			CreatedAt:    day("2023-08-30"),
			HelpfulCount: 7,
		},
		{
			ID:           "114",
			ProductID:    "guatemala-antigua",
			UserID:       "2",
			UserName:     "Jane Doe",
			Rating:       5,
			Title:        "Wonderful Central American Coffee",
			Comment:      "The cinnamon and cocoa notes in this Guatemalan coffee are delightful. It has a clean, crisp acidity that makes it perfect for morning drinking.",
			CreatedAt:    day("2023-09-10"),
			HelpfulCount: 19,
		},
	}
}
