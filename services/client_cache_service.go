package services

import (
	"context"
	"fmt"
	"log"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"google.golang.org/genai"
)

// ClientCacheService hands out Gemini clients keyed by API key so repeated
// requests within the same process reuse one client instead of
// re-initializing it per call. Injected into the staging service rather than
// living as a module-level singleton, which keeps tests in control of it.
type ClientCacheService struct {
	cache *cache.LoadableCache[*genai.Client]
}

func NewClientCacheService() (*ClientCacheService, error) {
	// A process only ever sees a handful of API keys.
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100,
		MaxCost:     16,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	loadFunction := func(ctx context.Context, key any) (*genai.Client, []store.Option, error) {
		apiKey, ok := key.(string)
		if !ok {
			return nil, nil, fmt.Errorf("invalid key type provided to client cache: expected string, got %T", key)
		}
		log.Printf("CACHE MISS for google ai client. Initializing a new one.")
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		return client, []store.Option{store.WithCost(1)}, err
	}

	return &ClientCacheService{
		cache: cache.NewLoadable[*genai.Client](
			loadFunction,
			cache.New[*genai.Client](ristrettoStore),
		),
	}, nil
}

func (s *ClientCacheService) GetClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	return s.cache.Get(ctx, apiKey)
}
