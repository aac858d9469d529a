package alphabet

import (
	"context"
	_ "embed"
	goerrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/cache"
	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/httputil"
	"github.com/matzehuels/wordsearch/pkg/observability"
)

// Loader fetches the bytes of a named catalog resource.
type Loader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, name string) ([]byte, error)

// Load calls f(ctx, name).
func (f LoaderFunc) Load(ctx context.Context, name string) ([]byte, error) { return f(ctx, name) }

// maxResourceSize bounds catalog reads from disk and network.
const maxResourceSize = 8 << 20

// =============================================================================
// Embedded
// =============================================================================

//go:embed alphabets.json
var builtinCatalog []byte

// EmbeddedLoader serves the catalog compiled into the binary. It only knows
// DefaultResource.
type EmbeddedLoader struct{}

// Load returns the embedded catalog.
func (EmbeddedLoader) Load(_ context.Context, name string) ([]byte, error) {
	if name != DefaultResource {
		return nil, errors.New(errors.ErrCodeNotFound, "no embedded resource %q", name)
	}
	return builtinCatalog, nil
}

// =============================================================================
// File
// =============================================================================

// FileLoader reads resources from a directory.
type FileLoader struct {
	Dir string
}

// Load reads Dir/name.
func (l FileLoader) Load(_ context.Context, name string) ([]byte, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}
	path := filepath.Join(l.Dir, filepath.FromSlash(name))

	f, err := os.Open(path)
	if goerrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "alphabet catalog %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxResourceSize))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return data, nil
}

// =============================================================================
// HTTP
// =============================================================================

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultAttempts    = 3
	defaultRetryDelay  = time.Second
)

// HTTPLoader fetches resources relative to BaseURL.
//
// Transport failures, 429 and 5xx responses are retried. Successful bodies
// are stored in Cache for TTL and served from there until they expire.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
	Cache   cache.Cache
	Keyer   cache.Keyer
	TTL     time.Duration

	// Attempts and Delay control retries; zero means 3 attempts starting at
	// one second.
	Attempts int
	Delay    time.Duration

	// Refresh skips cache reads but still writes fetched bodies.
	Refresh bool

	Logger *log.Logger
}

// NewHTTPLoader returns a loader for baseURL with default client, TTL and a
// null cache.
func NewHTTPLoader(baseURL string, c cache.Cache) (*HTTPLoader, error) {
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &HTTPLoader{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: defaultHTTPTimeout},
		Cache:   c,
		Keyer:   cache.NewDefaultKeyer(""),
		TTL:     cache.TTLAlphabet,
	}, nil
}

// Load fetches BaseURL/name, consulting the cache first.
func (l *HTTPLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	store := l.Cache
	if store == nil {
		store = cache.NewNullCache()
	}
	keyer := l.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer("")
	}
	key := keyer.AlphabetKey(l.BaseURL, name)

	if !l.Refresh {
		data, ok, err := store.Get(ctx, key)
		if err != nil {
			logger.Warn("alphabet cache read failed", "error", err)
		} else if ok {
			observability.Cache().OnCacheHit(ctx, "alphabet")
			logger.Debug("alphabet catalog from cache", "name", name)
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "alphabet")
	}

	target := strings.TrimSuffix(l.BaseURL, "/") + "/" + name
	attempts := l.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	delay := l.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var data []byte
	err := httputil.Retry(ctx, attempts, delay, func() error {
		var err error
		data, err = l.fetch(ctx, target)
		if err != nil && httputil.IsRetryable(err) {
			logger.Debug("alphabet fetch failed, retrying", "url", target, "error", err)
		}
		return err
	})
	if err != nil {
		return nil, classifyFetchError(target, err)
	}

	ttl := l.TTL
	if ttl <= 0 {
		ttl = cache.TTLAlphabet
	}
	if err := store.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("alphabet cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "alphabet", len(data))
	}
	return data, nil
}

func (l *HTTPLoader) fetch(ctx context.Context, target string) ([]byte, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, u.Host, u.Path, err)
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, httputil.Retryable(err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if err := httputil.CheckStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceSize))
	if err != nil {
		return nil, httputil.Retryable(err)
	}
	return body, nil
}

func classifyFetchError(target string, err error) error {
	switch {
	case goerrors.Is(err, httputil.ErrNotFound):
		return errors.Wrap(errors.ErrCodeNotFound, err, "alphabet catalog %s", target)
	case goerrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "fetch %s", target)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", target)
	}
}

// =============================================================================
// Selection
// =============================================================================

// IsURL reports whether source names an http or https location.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// NewLoader picks a loader for source: "" selects the embedded catalog, an
// http(s) URL the HTTP loader backed by c, anything else a directory.
func NewLoader(source string, c cache.Cache) (Loader, error) {
	switch {
	case source == "":
		return EmbeddedLoader{}, nil
	case IsURL(source):
		l, err := NewHTTPLoader(source, c)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return FileLoader{Dir: source}, nil
	}
}

// Open builds a catalog from source. A source ending in ".json" names the
// catalog file itself; otherwise it is the location holding DefaultResource.
func Open(source string, c cache.Cache, opts ...Option) (*Catalog, error) {
	base, resource := splitSource(source)
	loader, err := NewLoader(base, c)
	if err != nil {
		return nil, fmt.Errorf("alphabet source %q: %w", source, err)
	}
	if resource != "" {
		opts = append([]Option{WithResource(resource)}, opts...)
	}
	return NewCatalog(loader, opts...), nil
}

func splitSource(source string) (base, resource string) {
	if !strings.HasSuffix(strings.ToLower(source), ".json") {
		return source, ""
	}
	if IsURL(source) {
		i := strings.LastIndex(source, "/")
		return source[:i], source[i+1:]
	}
	return filepath.Dir(source), filepath.Base(source)
}
