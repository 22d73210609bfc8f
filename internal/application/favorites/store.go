package favorites

import "sync"

// Store favoritos del usuario en memoria, en orden de marcado.
type Store struct {
	mu  sync.Mutex
	ids []string
}

func NewStore() *Store { return &Store{} }

// Toggle marca o desmarca el producto y devuelve si quedó como favorito.
func (s *Store) Toggle(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(productID); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
		return false
	}
	s.ids = append(s.ids, productID)
	return true
}

// Remove desmarca el producto; no-op si no era favorito.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(productID); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
}

func (s *Store) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// IDs copia de los favoritos en orden de marcado.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Store) indexOf(id string) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}
