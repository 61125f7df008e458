package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (*UserService, uint) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	user := models.User{
		Username:     "johndoe",
		Email:        "john@example.com",
		PasswordHash: "hash",
		FirstName:    "John",
		LastName:     "Doe",
		Addresses:    models.AddressList{},
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return NewUserService(repository.NewUserRepository(db)), user.ID
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, userID := setupUserServiceTest(t)

	first := "  Johnny "
	updated, err := svc.UpdateProfile(userID, UpdateProfileInput{FirstName: &first})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.FirstName != "Johnny" {
		t.Fatalf("first name not trimmed: %q", updated.FirstName)
	}
	if updated.LastName != "Doe" {
		t.Fatalf("last name changed unexpectedly: %q", updated.LastName)
	}

	if _, err := svc.UpdateProfile(99999, UpdateProfileInput{FirstName: &first}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc, userID := setupUserServiceTest(t)

	addresses, err := svc.AddAddress(userID, models.Address{Street: "123 Main St", City: "Seattle"})
	if err != nil {
		t.Fatalf("AddAddress error: %v", err)
	}
	if len(addresses) != 1 || !addresses[0].IsDefault {
		t.Fatalf("first address should be default: %+v", addresses)
	}
}

func TestNewDefaultAddressClearsOthers(t *testing.T) {
	svc, userID := setupUserServiceTest(t)

	if _, err := svc.AddAddress(userID, models.Address{Street: "123 Main St"}); err != nil {
		t.Fatalf("AddAddress error: %v", err)
	}
	addresses, err := svc.AddAddress(userID, models.Address{Street: "456 Pine St", IsDefault: true})
	if err != nil {
		t.Fatalf("AddAddress error: %v", err)
	}

	defaults := 0
	for _, address := range addresses {
		if address.IsDefault {
			defaults++
		}
	}
	if defaults != 1 || !addresses[1].IsDefault {
		t.Fatalf("expected exactly one default on the new address: %+v", addresses)
	}
}

func TestSetDefaultAddress(t *testing.T) {
	svc, userID := setupUserServiceTest(t)
	if _, err := svc.AddAddress(userID, models.Address{Street: "123 Main St"}); err != nil {
		t.Fatalf("AddAddress error: %v", err)
	}
	if _, err := svc.AddAddress(userID, models.Address{Street: "456 Pine St"}); err != nil {
		t.Fatalf("AddAddress error: %v", err)
	}

	addresses, err := svc.SetDefaultAddress(userID, 1)
	if err != nil {
		t.Fatalf("SetDefaultAddress error: %v", err)
	}
	if addresses[0].IsDefault || !addresses[1].IsDefault {
		t.Fatalf("default flag not moved: %+v", addresses)
	}

	if _, err := svc.SetDefaultAddress(userID, 5); err != ErrAddressNotFound {
		t.Fatalf("expected ErrAddressNotFound, got: %v", err)
	}
	if _, err := svc.SetDefaultAddress(userID, -1); err != ErrAddressNotFound {
		t.Fatalf("expected ErrAddressNotFound, got: %v", err)
	}
}

func TestListAddressesPersistedRoundtrip(t *testing.T) {
	svc, userID := setupUserServiceTest(t)
	if _, err := svc.AddAddress(userID, models.Address{Street: "123 Main St", ZipCode: "98101", Country: "USA"}); err != nil {
		t.Fatalf("AddAddress error: %v", err)
	}

	addresses, err := svc.ListAddresses(userID)
	if err != nil {
		t.Fatalf("ListAddresses error: %v", err)
	}
	if len(addresses) != 1 || addresses[0].ZipCode != "98101" {
		t.Fatalf("addresses not persisted: %+v", addresses)
	}
}
