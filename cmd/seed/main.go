package main

import (
	"github.com/brewnext/internal/config"
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
	"github.com/brewnext/internal/seed"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 示例用户（按邮箱幂等）
	for _, su := range seed.Users() {
		var existing models.User
		if err := models.DB.Where("email = ?", su.Email).First(&existing).Error; err == nil {
			stdLog.Printf("User already exists: %s", su.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", su.Email, err)
			continue
		}
		user := models.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hash),
			FirstName:    su.FirstName,
			LastName:     su.LastName,
			Phone:        su.Phone,
			Addresses:    su.Addresses,
			Status:       constants.UserStatusActive,
			CreatedAt:    su.CreatedAt,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", su.Email, err)
			continue
		}
		stdLog.Printf("Created user: %s", su.Email)
	}

	// 示例订单/评论集合（存储已有数据时跳过）
	store := kvstore.NewGormStore(models.DB)

	if _, ok := kvstore.LoadJSON(store, constants.StoreKeyOrders, func(list *[]models.Order) bool {
		return *list != nil
	}); ok {
		stdLog.Printf("Orders collection already seeded")
	} else if err := repository.NewOrderRepository(store).Replace(seed.Orders()); err != nil {
		stdLog.Printf("Failed to seed orders: %v", err)
	} else {
		stdLog.Printf("Seeded %d orders", len(seed.Orders()))
	}

	if _, ok := kvstore.LoadJSON(store, constants.StoreKeyReviews, func(list *[]models.Review) bool {
		return *list != nil
	}); ok {
		stdLog.Printf("Reviews collection already seeded")
	} else if err := repository.NewReviewRepository(store).Replace(seed.Reviews()); err != nil {
		stdLog.Printf("Failed to seed reviews: %v", err)
	} else {
		stdLog.Printf("Seeded %d reviews", len(seed.Reviews()))
	}

	stdLog.Printf("Seed completed")
}
