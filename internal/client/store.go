package client

import (
	"strings"
	"sync"
)

// Store: кэш ответов по ключам. Каждый ключ имеет поколение: инвалидация
// увеличивает его, и запись результата, полученного для старого поколения, отбрасывается.
type Store struct {
	mu      sync.Mutex
	entries map[string]any
	gens    map[string]uint64
}

// NewStore создаёт пустой кэш.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]any),
		gens:    make(map[string]uint64),
	}
}

// Get возвращает закэшированное значение.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// Generation возвращает текущее поколение ключа. Вызывается перед запросом к сервису.
func (s *Store) Generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gens[key]; !ok {
		s.gens[key] = 0
	}
	return s.gens[key]
}

// Put сохраняет значение, если поколение ключа не изменилось с момента запроса.
func (s *Store) Put(key string, gen uint64, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[key] != gen {
		return false
	}
	s.entries[key] = v
	return true
}

// Invalidate сбрасывает ключи и ключи с префиксом "key?" (списки с параметрами).
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		for k := range s.gens {
			if k == key || strings.HasPrefix(k, key+"?") {
				s.gens[k]++
				delete(s.entries, k)
			}
		}
		delete(s.entries, key)
	}
}

// Len возвращает количество закэшированных значений.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
