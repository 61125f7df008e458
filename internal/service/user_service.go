package service

import (
	"strings"

	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
)

// UserService 用户资料与地址服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID 获取脱敏用户信息
func (s *UserService) GetByID(userID uint) (*models.PublicUserData, error) {
	user, err := s.mustGet(userID)
	if err != nil {
		return nil, err
	}
	public := user.Sanitize()
	return &public, nil
}

// UpdateProfileInput 资料更新入参，nil 字段表示不修改
type UpdateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// UpdateProfile 更新基础资料
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.mustGet(userID)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	logger.Infow("user_profile_updated", "user_id", userID)
	return user, nil
}

// ListAddresses 返回用户地址列表
func (s *UserService) ListAddresses(userID uint) (models.AddressList, error) {
	user, err := s.mustGet(userID)
	if err != nil {
		return nil, err
	}
	if user.Addresses == nil {
		return models.AddressList{}, nil
	}
	return user.Addresses, nil
}

// AddAddress 新增地址。首个地址自动成为默认地址；
// 新地址声明为默认时清掉其余地址的默认标记，保证至多一个默认。
func (s *UserService) AddAddress(userID uint, address models.Address) (models.AddressList, error) {
	user, err := s.mustGet(userID)
	if err != nil {
		return nil, err
	}

	if len(user.Addresses) == 0 {
		address.IsDefault = true
	}
	if address.IsDefault {
		for i := range user.Addresses {
			user.Addresses[i].IsDefault = false
		}
	}
	user.Addresses = append(user.Addresses, address)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	logger.Infow("user_address_added", "user_id", userID, "default", address.IsDefault)
	return user.Addresses, nil
}

// SetDefaultAddress 把指定下标的地址设为唯一默认地址
func (s *UserService) SetDefaultAddress(userID uint, index int) (models.AddressList, error) {
	user, err := s.mustGet(userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(user.Addresses) {
		return nil, ErrAddressNotFound
	}
	for i := range user.Addresses {
		user.Addresses[i].IsDefault = i == index
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

// List 用户列表（后台能力）
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

func (s *UserService) mustGet(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
