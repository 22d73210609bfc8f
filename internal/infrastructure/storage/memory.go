package storage

import (
	"context"
	"sync"
)

// Memory implementa repository.KeyValueStorage en memoria.
// Permite inyectar fallos por operación para probar la frontera de persistencia.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	failOn map[string]error // "get", "set", "remove"
}

// NewMemory construye un almacenamiento vacío.
func NewMemory() *Memory {
	return &Memory{data: map[string]string{}, failOn: map[string]error{}}
}

// FailOn hace que la operación op ("get", "set", "remove") devuelva err; err nil la restablece.
func (m *Memory) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failOn, op)
		return
	}
	m.failOn[op] = err
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failOn["get"]; err != nil {
		return "", false, err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn["set"]; err != nil {
		return err
	}
	m.data[key] = value
	return nil
}

// Remove borra la clave; borrar una clave inexistente no es error.
func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn["remove"]; err != nil {
		return err
	}
	delete(m.data, key)
	return nil
}

// Len número de claves guardadas.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
