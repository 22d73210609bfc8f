package repository

import "context"

// KeyValueStorage define el puerto del almacenamiento local del dispositivo (DIP).
// Get devuelve found=false cuando la clave no existe; eso no es un error.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
