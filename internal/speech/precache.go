package speech

import "context"

// Precacher is implemented by providers that keep synthesized audio in a
// local cache. Precaching fills the cache without playing anything.
type Precacher interface {
	Precache(ctx context.Context, u Utterance) error
}

// Precache synthesizes the utterance into the provider's cache when the
// provider supports caching. Providers without a cache are a no-op.
func Precache(ctx context.Context, s Synthesizer, u Utterance) error {
	if p, ok := s.(Precacher); ok {
		return p.Precache(ctx, u)
	}
	return nil
}
