package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/concurrency"
	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// ProductLookup resolves catalog products by id
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// Service manages per-user shopping carts
type Service interface {
	Get(ctx context.Context, userID string) (*domain.CartSummary, error)
	// AddItem merges quantity into an existing line for the same product
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartSummary, error)
	// UpdateQuantity sets a line's quantity; zero or less removes the line
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.CartSummary, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.CartSummary, error)
	Clear(ctx context.Context, userID string) (*domain.CartSummary, error)
}

type service struct {
	products ProductLookup
	locks    *concurrency.LockManager
	clock    clock.Clock
	taxRate  decimal.Decimal

	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewService creates an in-memory cart service
func NewService(products ProductLookup, locks *concurrency.LockManager, clk clock.Clock) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{
		products: products,
		locks:    locks,
		clock:    clk,
		taxRate:  decimal.RequireFromString(domain.CartTaxRate),
		carts:    make(map[string]*domain.Cart),
	}
}

func lockKey(userID string) string {
	return "cart:" + userID
}

// cart returns the user's cart, creating an empty one if needed.
// Callers hold the user's lock.
func (s *service) cart(userID string) *domain.Cart {
	s.mu.RLock()
	c, ok := s.carts[userID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.carts[userID]; ok {
		return c
	}
	c = emptyCart(userID, s.clock.Now())
	s.carts[userID] = c
	return c
}

// lookup returns the user's cart without creating one
func (s *service) lookup(userID string) (*domain.Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[userID]
	return c, ok
}

// dropIfEmpty forgets an emptied cart so idle users hold no memory.
// Callers hold the user's lock.
func (s *service) dropIfEmpty(c *domain.Cart) {
	if len(c.Items) > 0 {
		return
	}
	s.mu.Lock()
	delete(s.carts, c.UserID)
	s.mu.Unlock()
}

func emptyCart(userID string, at time.Time) *domain.Cart {
	return &domain.Cart{UserID: userID, Items: []domain.CartItem{}, UpdatedAt: at}
}

func requireUser(userID string) error {
	if userID == "" {
		return domain.NewValidationError(map[string]string{"user_id": MsgUserIDRequired})
	}
	return nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.CartSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var summary *domain.CartSummary
	err := s.locks.WithLock(lockKey(userID), func() error {
		c, ok := s.lookup(userID)
		if !ok {
			c = emptyCart(userID, s.clock.Now())
		}
		summary = s.summarize(c)
		return nil
	})
	return summary, err
}

func (s *service) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartSummary, error) {
	fields := map[string]string{}
	if userID == "" {
		fields["user_id"] = MsgUserIDRequired
	}
	if productID == "" {
		fields["product_id"] = MsgProductIDRequired
	}
	if quantity < 1 {
		fields["quantity"] = MsgQuantityPositive
	}
	if err := domain.NewValidationError(fields); err != nil {
		return nil, err
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var summary *domain.CartSummary
	err = s.locks.WithLock(lockKey(userID), func() error {
		c := s.cart(userID)
		now := s.clock.Now()

		merged := false
		for i := range c.Items {
			if c.Items[i].Product.ID == productID {
				c.Items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			c.Items = append(c.Items, domain.CartItem{Product: *product, Quantity: quantity, AddedAt: now})
		}
		c.UpdatedAt = now

		summary = s.summarize(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemAdded, "user_id", userID, "product_id", productID, "quantity", quantity)
	return summary, nil
}

func (s *service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.CartSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var summary *domain.CartSummary
	err := s.locks.WithLock(lockKey(userID), func() error {
		c, ok := s.lookup(userID)
		i := -1
		if ok {
			i = indexOf(c, productID)
		}
		if i < 0 {
			return fmt.Errorf("%w: product %s is not in the cart", domain.ErrNotFound, productID)
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.UpdatedAt = s.clock.Now()
		summary = s.summarize(c)
		s.dropIfEmpty(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemUpdated, "user_id", userID, "product_id", productID, "quantity", quantity)
	return summary, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID string) (*domain.CartSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var summary *domain.CartSummary
	err := s.locks.WithLock(lockKey(userID), func() error {
		c, ok := s.lookup(userID)
		i := -1
		if ok {
			i = indexOf(c, productID)
		}
		if i < 0 {
			return fmt.Errorf("%w: product %s is not in the cart", domain.ErrNotFound, productID)
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		c.UpdatedAt = s.clock.Now()
		summary = s.summarize(c)
		s.dropIfEmpty(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemRemoved, "user_id", userID, "product_id", productID)
	return summary, nil
}

func (s *service) Clear(ctx context.Context, userID string) (*domain.CartSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var summary *domain.CartSummary
	err := s.locks.WithLock(lockKey(userID), func() error {
		c := emptyCart(userID, s.clock.Now())
		summary = s.summarize(c)
		s.dropIfEmpty(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCartCleared, "user_id", userID)
	return summary, nil
}

func indexOf(c *domain.Cart, productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// summarize copies the cart and computes totals. Tax is rounded to 2 places.
func (s *service) summarize(c *domain.Cart) *domain.CartSummary {
	items := append([]domain.CartItem(nil), c.Items...)
	if items == nil {
		items = []domain.CartItem{}
	}

	totalItems := 0
	subtotal := decimal.Zero
	for _, item := range items {
		totalItems += item.Quantity
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax := subtotal.Mul(s.taxRate).Round(2)

	return &domain.CartSummary{
		Cart:       domain.Cart{UserID: c.UserID, Items: items, UpdatedAt: c.UpdatedAt},
		TotalItems: totalItems,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      subtotal.Add(tax),
	}
}
