// Package imageurl turns the raw image paths stored on product records into
// browseable URLs. The backend historically stored Windows-style paths and
// sometimes a full "uploads/..." prefix, so the resolver normalizes both.
package imageurl

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Placeholder is served when a product carries no image at all.
const Placeholder = "/images/placeholder.png"

const cacheSize = 512

// Resolver maps stored image paths to absolute URLs under the remote base.
// Resolution is pure string work but runs once per rendered row, so results
// are memoized.
type Resolver struct {
	baseURL string
	memo    *lru.Cache[string, string]
}

func NewResolver(baseURL string) (*Resolver, error) {
	memo, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		memo:    memo,
	}, nil
}

// Resolve returns the absolute URL for a stored image path, or Placeholder
// when the path is empty.
func (r *Resolver) Resolve(stored string) string {
	if stored == "" {
		return Placeholder
	}
	if cached, ok := r.memo.Get(stored); ok {
		return cached
	}
	url := r.baseURL + "/" + normalize(stored)
	r.memo.Add(stored, url)
	return url
}

// normalize converts backslash separators, drops any leading slash and makes
// sure the path sits under uploads/ exactly once.
func normalize(stored string) string {
	p := strings.ReplaceAll(stored, `\`, "/")
	p = strings.TrimLeft(p, "/")
	if !strings.HasPrefix(p, "uploads/") {
		p = "uploads/" + p
	}
	return p
}
