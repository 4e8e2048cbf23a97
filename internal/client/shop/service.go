// Package shop содержит сценарии каталога, корзины, заказов и профиля.
package shop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/session"
	"github.com/iudanet/storefront/internal/client/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

var (
	// ErrInvalidInput wraps every client-side validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCart возвращается при попытке оформить пустую корзину
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNothingToUpdate возвращается, если в обновлении профиля нет полей
	ErrNothingToUpdate = errors.New("nothing to update")
)

// API is the subset of the backend client the shop flows need
type API interface {
	Products(ctx context.Context, filter api.ProductFilter) ([]pkgapi.Product, error)
	Product(ctx context.Context, id int64) (*pkgapi.Product, error)
	Categories(ctx context.Context) ([]pkgapi.Category, error)
	Cart(ctx context.Context) (*pkgapi.Cart, error)
	AddToCart(ctx context.Context, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, itemID int64) error
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	CreateOrder(ctx context.Context, req pkgapi.CreateOrderRequest) (*pkgapi.Order, error)
	Orders(ctx context.Context) ([]pkgapi.Order, error)
	Order(ctx context.Context, id int64) (*pkgapi.Order, error)
	Profile(ctx context.Context) (*pkgapi.User, error)
	UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.User, error)
}

var _ API = (*api.Client)(nil)

// Service предоставляет операции магазина
type Service struct {
	api      API
	session  *session.Manager
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService создает сервис магазина. sessions may be nil.
func NewService(apiClient API, sessions *session.Manager, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:      apiClient,
		session:  sessions,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Products возвращает каталог с учётом фильтра
func (s *Service) Products(ctx context.Context, filter api.ProductFilter) ([]pkgapi.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.CategoryID < 0 {
		return nil, fmt.Errorf("%w: category id must be positive", ErrInvalidInput)
	}
	return s.api.Products(ctx, filter)
}

// Product возвращает карточку товара
func (s *Service) Product(ctx context.Context, id int64) (*pkgapi.Product, error) {
	if err := s.check(idInput{ID: id}); err != nil {
		return nil, err
	}
	return s.api.Product(ctx, id)
}

// Categories возвращает список категорий
func (s *Service) Categories(ctx context.Context) ([]pkgapi.Category, error) {
	return s.api.Categories(ctx)
}

// Cart возвращает корзину
func (s *Service) Cart(ctx context.Context) (*pkgapi.Cart, error) {
	return s.api.Cart(ctx)
}

// AddToCart добавляет товар в корзину
func (s *Service) AddToCart(ctx context.Context, productID int64, quantity int) error {
	if err := s.check(cartLine{ID: productID, Quantity: quantity}); err != nil {
		return err
	}
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}
	s.logger.Debug("added to cart", "product_id", productID, "quantity", quantity)
	return nil
}

// RemoveFromCart удаляет позицию корзины
func (s *Service) RemoveFromCart(ctx context.Context, itemID int64) error {
	if err := s.check(idInput{ID: itemID}); err != nil {
		return err
	}
	return s.api.RemoveFromCart(ctx, itemID)
}

// UpdateCartItem меняет количество товара в позиции
func (s *Service) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	if err := s.check(cartLine{ID: itemID, Quantity: quantity}); err != nil {
		return err
	}
	return s.api.UpdateCartItem(ctx, itemID, quantity)
}

// Quote загружает корзину и считает итог к оплате
func (s *Service) Quote(ctx context.Context) (*pkgapi.Cart, Quote, error) {
	cart, err := s.api.Cart(ctx)
	if err != nil {
		return nil, Quote{}, err
	}
	q, err := QuoteCart(cart)
	if err != nil {
		return nil, Quote{}, fmt.Errorf("failed to price cart: %w", err)
	}
	return cart, q, nil
}

// CheckoutInput содержит данные оформления заказа
type CheckoutInput struct {
	ShippingAddress string               `validate:"required"`
	PaymentMethod   pkgapi.PaymentMethod `validate:"omitempty,oneof=cash_on_delivery card"`
}

// Checkout оформляет заказ из текущей корзины
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*pkgapi.Order, error) {
	in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	in.PaymentMethod = pkgapi.PaymentMethod(strings.TrimSpace(string(in.PaymentMethod)))
	if err := s.check(in); err != nil {
		return nil, err
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = pkgapi.PaymentCashOnDelivery
	}

	cart, err := s.api.Cart(ctx)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := s.api.CreateOrder(ctx, pkgapi.CreateOrderRequest{
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed", "order_id", order.ID, "order_number", order.OrderNumber)
	return order, nil
}

// Orders возвращает историю заказов
func (s *Service) Orders(ctx context.Context) ([]pkgapi.Order, error) {
	return s.api.Orders(ctx)
}

// Order возвращает детали заказа
func (s *Service) Order(ctx context.Context, id int64) (*pkgapi.Order, error) {
	if err := s.check(idInput{ID: id}); err != nil {
		return nil, err
	}
	return s.api.Order(ctx, id)
}

// Profile возвращает профиль и обновляет кэш пользователя
func (s *Service) Profile(ctx context.Context) (*pkgapi.User, error) {
	user, err := s.api.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.refreshCachedUser(ctx, user)
	return user, nil
}

// UpdateProfile частично обновляет профиль; nil поля не отправляются
func (s *Service) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.User, error) {
	if req.FirstName == nil && req.LastName == nil {
		return nil, ErrNothingToUpdate
	}

	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	s.refreshCachedUser(ctx, user)
	return user, nil
}

func (s *Service) refreshCachedUser(ctx context.Context, user *pkgapi.User) {
	if s.session == nil || user == nil {
		return
	}
	if err := s.session.Set(ctx, storage.NewCachedUser(user)); err != nil {
		// Кэш пользователя вторичен: ответ сервера уже получен
		s.logger.Warn("failed to update cached user", "error", err)
	}
}
