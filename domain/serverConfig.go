package domain

import "time"

// ServerConfig holds a list of configuration parameters for the server
type ServerConfig struct {
	// ListenHTTP contains the HTTP listening address in format ":8080"
	ListenHTTP string

	// BaseURL overrides the externally visible base URL derived from the request
	BaseURL string

	// Partition is the internal namespace resources are stored under
	Partition string

	// Debug (display or hide debug logging)
	Debug bool

	// StoreDriver selects the persistence backend: memory, bolt, badger or sqlite
	StoreDriver string

	// StorePath points to the location of the backend data on the filesystem
	StorePath string

	// CacheSize is the number of current resources kept in memory (0 disables the cache)
	CacheSize int

	// BinaryRoot points to the folder NonRDFSource content is written to
	BinaryRoot string

	// CookieHashKey authenticates the session cookie (hex or raw)
	CookieHashKey string

	// CookieBlockKey encrypts the session cookie (optional)
	CookieBlockKey string

	// CookieAge contains the validity duration for session cookies (in hours)
	CookieAge int64

	// DefaultJSONLDProfile is used when a JSON-LD client asks for no profile
	DefaultJSONLDProfile string

	// RequestTimeout bounds the handling of one request
	RequestTimeout time.Duration
}
