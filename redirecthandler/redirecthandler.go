// redirecthandler/redirecthandler.go

/* The redirecthandler package implements the redirect policy for the HTTP client: a bounded
number of redirects, loop detection over the request chain, sensitive header stripping on
cross-domain hops, method adjustment for 303 See Other, and a cache of permanent redirects
so known-moved resources jump straight to their final location. */

package redirecthandler

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"github.com/deploymenttheory/go-api-client-jamfpro/status"
	"go.uber.org/zap"
)

// RedirectHandler contains configurations for handling HTTP redirects.
type RedirectHandler struct {
	Logger             logger.Logger     // Logger instance for logging.
	MaxRedirects       int               // Maximum allowed redirects to prevent infinite loops.
	SensitiveHeaders   []string          // Headers to be removed on cross-domain redirects.
	PermanentRedirects map[string]string // Cache of permanent redirect locations.
	PermRedirectsMutex sync.RWMutex      // Mutex for safe concurrent access to PermanentRedirects.
}

// NewRedirectHandler creates a new instance of RedirectHandler.
func NewRedirectHandler(log logger.Logger, maxRedirects int) *RedirectHandler {
	return &RedirectHandler{
		Logger:             log,
		MaxRedirects:       maxRedirects,
		SensitiveHeaders:   []string{"Authorization", "Cookie"},
		PermanentRedirects: make(map[string]string),
	}
}

// AddSensitiveHeader allows adding configurable sensitive headers.
func (r *RedirectHandler) AddSensitiveHeader(header string) {
	r.SensitiveHeaders = append(r.SensitiveHeaders, header)
}

// WithRedirectHandling applies the redirect handling policy to an http.Client.
func (r *RedirectHandler) WithRedirectHandling(client *http.Client) {
	client.CheckRedirect = r.checkRedirect
}

// checkRedirect implements the redirect handling logic. It is invoked by the http.Client
// before each redirect hop: req is the upcoming request (already pointing at the redirect
// target) and via holds the chain of requests made so far, oldest first.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	// Non-idempotent methods are never re-issued at a new location.
	if req.Method == http.MethodPost || req.Method == http.MethodPatch {
		r.Logger.Warn("Redirect attempted on non-idempotent method, not following", zap.String("method", req.Method))
		return http.ErrUseLastResponse
	}

	if len(via) >= r.MaxRedirects {
		r.Logger.Warn("Maximum redirects reached", zap.Int("maxRedirects", r.MaxRedirects))
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	if hasLoop(req, via) {
		r.Logger.Error("Redirect loop detected", zap.String("url", req.URL.String()))
		return &RedirectLoopError{URL: req.URL.String()}
	}

	lastRequest := via[len(via)-1]

	// Jump straight to a cached permanent redirect target when one is known.
	if cached, ok := r.checkPermanentRedirect(req.URL.String()); ok && (req.Method == http.MethodGet || req.Method == http.MethodHead) {
		parsedURL, err := url.Parse(cached)
		if err != nil {
			r.Logger.Error("Failed to parse URL from permanent redirect cache", zap.String("url", cached), zap.Error(err))
		} else {
			if parsedURL.Host != lastRequest.URL.Host {
				r.secureRequest(req)
			}
			r.Logger.Info("Using cached permanent redirect", zap.String("originalURL", req.URL.String()), zap.String("redirectURL", parsedURL.String()))
			req.URL = parsedURL
			return nil
		}
	}

	// The response that caused this hop travels on the upcoming request, not on the
	// via chain: the first entry there is the caller's own request and carries none.
	redirectResponse := req.Response
	if redirectResponse == nil || !status.IsRedirectStatusCode(redirectResponse.StatusCode) {
		return http.ErrUseLastResponse
	}

	// Apply security measures for cross-domain redirects.
	if req.URL.Host != lastRequest.URL.Host {
		r.secureRequest(req)
	}

	// Cache permanent redirects so later requests skip the extra hop.
	if status.IsPermanentRedirect(redirectResponse.StatusCode) {
		r.cachePermanentRedirect(lastRequest.URL.String(), req.URL.String())
	}

	// Special handling for 303 See Other.
	if redirectResponse.StatusCode == http.StatusSeeOther {
		r.adjustForSeeOther(req)
	}

	r.Logger.Info("Redirecting request",
		zap.String("originalURL", lastRequest.URL.String()),
		zap.String("newURL", req.URL.String()),
		zap.Int("redirectCount", len(via)))

	return nil
}

// secureRequest removes sensitive headers from the request if the new destination is a different domain.
func (r *RedirectHandler) secureRequest(req *http.Request) {
	for _, header := range r.SensitiveHeaders {
		if req.Header.Get(header) != "" {
			req.Header.Del(header)
			r.Logger.Debug("Removed sensitive header on cross-domain redirect", zap.String("header", header))
		}
	}
}

// adjustForSeeOther adjusts the request for "303 See Other" responses.
func (r *RedirectHandler) adjustForSeeOther(req *http.Request) {
	req.Method = http.MethodGet
	req.Body = nil
	req.GetBody = nil
	req.ContentLength = 0
	req.Header.Del("Content-Type")
}

// RedirectLoopError represents an error when a redirect loop is detected.
type RedirectLoopError struct {
	URL string
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect loop detected at %s", e.URL)
}

// MaxRedirectsError represents an error when the maximum number of redirects is reached.
type MaxRedirectsError struct {
	MaxRedirects int
}

func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("maximum redirects reached: %d", e.MaxRedirects)
}

// cachePermanentRedirect caches the permanent redirect location.
func (r *RedirectHandler) cachePermanentRedirect(originalURL, redirectURL string) {
	r.PermRedirectsMutex.Lock()
	defer r.PermRedirectsMutex.Unlock()

	r.PermanentRedirects[originalURL] = redirectURL
}

// checkPermanentRedirect checks if there's a cached redirect for the given URL.
func (r *RedirectHandler) checkPermanentRedirect(originalURL string) (string, bool) {
	r.PermRedirectsMutex.RLock()
	defer r.PermRedirectsMutex.RUnlock()

	target, exists := r.PermanentRedirects[originalURL]
	return target, exists
}

// hasLoop reports whether the upcoming request target was already visited in the chain.
func hasLoop(req *http.Request, via []*http.Request) bool {
	target := req.URL.String()
	for _, prior := range via {
		if prior.URL.String() == target {
			return true
		}
	}
	return false
}

// SetupRedirectHandler configures the HTTP client for redirect handling based on the client configuration.
// When redirects are disabled the client returns the first response untouched.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log logger.Logger) error {
	if !followRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		log.Debug("Redirect handling disabled, responses returned as-is")
		return nil
	}

	if maxRedirects < 1 {
		log.Error("Invalid maxRedirects value", zap.Int("maxRedirects", maxRedirects))
		return fmt.Errorf("invalid maxRedirects value: %d", maxRedirects)
	}

	redirectHandler := NewRedirectHandler(log, maxRedirects)
	redirectHandler.WithRedirectHandling(client)
	log.Info("Redirect handling enabled", zap.Int("MaxRedirects", maxRedirects))
	return nil
}
