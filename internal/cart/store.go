package cart

import (
	"math"
	"sync"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

// Store holds the cart lines of a single session. A session has one logical
// owner, but handlers can still race on retries, so access is guarded.
// Lines keep insertion order; nothing here touches the network.
type Store struct {
	mu    sync.RWMutex
	lines []domain.CartLine
}

func NewStore() *Store {
	return &Store{}
}

// AddOrIncrement inserts a new line with quantity 1, or bumps the quantity
// of the existing line for the same product. No upper bound is enforced.
func (s *Store) AddOrIncrement(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID {
			s.lines[i].Quantity++
			return
		}
	}

	s.lines = append(s.lines, domain.CartLine{
		ProductID:  product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Quantity:   1,
		Image:      product.Image,
		BusinessID: product.BusinessID,
	})
}

func (s *Store) Remove(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

// SetQuantity sets the line quantity; n <= 0 removes the line entirely.
// Decrement-to-zero-removes is deliberate, not defensive clamping.
func (s *Store) SetQuantity(productID string, n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return s.removeLocked(productID)
	}

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = n
			return true
		}
	}
	return false
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a snapshot copy in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the unrounded sum of price x quantity. Orders must be persisted
// from this value, never from DisplayTotal.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// DisplayTotal rounds to 2 decimal places, for presentation only.
func (s *Store) DisplayTotal() float64 {
	return math.Round(s.Total()*100) / 100
}

// Count is the number of lines in the cart.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

func (s *Store) removeLocked(productID string) bool {
	for i, line := range s.lines {
		if line.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}
