package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// TTL fixo de todas as entradas.
const DefaultTTL = 3600 * time.Second

// Cache é um read-through sobre um Backend k/v. Valores são blobs JSON
// opacos. Nenhuma operação aqui propaga erro: cache indisponível é
// tratado como miss, a operação de negócio segue sem ele.
type Cache struct {
	backend Backend
}

func New(backend Backend) *Cache {
	return &Cache{backend: backend}
}

// Get desserializa a entrada em dest e reporta se houve hit.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	data, err := c.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Println("cache get error:", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Println("cache decode error:", err)
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Println("cache encode error:", err)
		return
	}

	if err := c.backend.SetEX(ctx, key, data, DefaultTTL); err != nil {
		log.Println("cache set error:", err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if err := c.backend.Del(ctx, keys...); err != nil {
		log.Println("cache delete error:", err)
	}
}

// DeletePrefix remove todas as chaves sob "{prefix}:*". Scan e delete não
// são atômicos entre si: uma chave criada no meio pode sobreviver até o
// TTL expirar.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) {
	keys, err := c.backend.Keys(ctx, prefix+":*")
	if err != nil {
		log.Println("cache keys error:", err)
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := c.backend.Del(ctx, keys...); err != nil {
		log.Println("cache delete error:", err)
	}
}

// --------------------------------------------------
// Invalidação dirigida por relacionamento
// --------------------------------------------------

// InvalidateProviderCaches derruba o calendário cacheado de cada provider
// com quem o usuário já agendou. A lista de ids vem de uma consulta
// explícita do chamador; o cache não conhece o repositório.
func (c *Cache) InvalidateProviderCaches(ctx context.Context, providerIDs []uuid.UUID) {
	for _, id := range dedupe(providerIDs) {
		c.DeletePrefix(ctx, ProviderAppointmentsPrefix(id))
	}
}

// InvalidateUserCaches derruba a lista de agendamentos de cada cliente de
// um provider. Chave exata, não prefixo: esse namespace não tem sub-chave.
func (c *Cache) InvalidateUserCaches(ctx context.Context, userIDs []uuid.UUID) {
	for _, id := range dedupe(userIDs) {
		c.Delete(ctx, UserAppointmentsKey(id))
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
