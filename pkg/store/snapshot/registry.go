package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options carry the credentials remote sources need.
type Options struct {
	AWSProfile string
	AWSRegion  string
}

// SourceFactory creates a Source for a parsed snapshot URI.
type SourceFactory func(ctx context.Context, uri *url.URL, opts Options) (Source, error)

// Registry manages snapshot source factories by URI scheme.
type Registry interface {
	// Register adds a factory for a URI scheme
	Register(scheme string, factory SourceFactory) error
	// Open resolves a snapshot URI to a Source; paths without a scheme are files
	Open(ctx context.Context, uri string, opts Options) (Source, error)
	// ListSchemes returns the registered schemes in lexical order
	ListSchemes() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]SourceFactory),
	}
}

// DefaultRegistry knows the builtin, file, s3 and azblob schemes.
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(SchemeBuiltin, builtinFactory)
	_ = r.Register(SchemeFile, fileFactory)
	_ = r.Register(SchemeS3, s3Factory)
	_ = r.Register(SchemeAzblob, azblobFactory)
	return r
}

func (r *registry) Register(scheme string, factory SourceFactory) error {
	if scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[scheme]; exists {
		return fmt.Errorf("scheme %q is already registered", scheme)
	}

	r.factories[scheme] = factory
	return nil
}

func (r *registry) Open(ctx context.Context, uri string, opts Options) (Source, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("snapshot source cannot be empty")
	}

	parsed, err := parseURI(uri)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	factory, exists := r.factories[parsed.Scheme]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("snapshot scheme %q is not registered (known: %s)",
			parsed.Scheme, strings.Join(r.ListSchemes(), ", "))
	}

	return factory(ctx, parsed, opts)
}

func (r *registry) ListSchemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, 0, len(r.factories))
	for scheme := range r.factories {
		schemes = append(schemes, scheme)
	}
	slices.Sort(schemes)
	return schemes
}

// parseURI treats anything without "scheme:" as a local path.
func parseURI(uri string) (*url.URL, error) {
	scheme, _, found := strings.Cut(uri, ":")
	if !found || strings.ContainsAny(scheme, `/\.`) || len(scheme) < 2 {
		return &url.URL{Scheme: SchemeFile, Path: uri}, nil
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot source %q: %w", uri, err)
	}
	return parsed, nil
}

func builtinFactory(_ context.Context, uri *url.URL, _ Options) (Source, error) {
	name := uri.Opaque
	if name == "" {
		name = strings.TrimPrefix(uri.Host+uri.Path, "/")
	}
	return NewBuiltinSource(name)
}

func fileFactory(_ context.Context, uri *url.URL, _ Options) (Source, error) {
	path := uri.Path
	if uri.Opaque != "" {
		path = uri.Opaque
	}
	if uri.Host != "" {
		path = uri.Host + path
	}
	if path == "" {
		return nil, fmt.Errorf("file source needs a path")
	}
	return NewFileSource(path), nil
}

func s3Factory(ctx context.Context, uri *url.URL, opts Options) (Source, error) {
	bucket, key := uri.Host, strings.TrimPrefix(uri.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 source must look like s3://bucket/key, got %q", uri.String())
	}

	cfg, err := LoadAWSConfig(ctx, opts.AWSProfile, opts.AWSRegion)
	if err != nil {
		return nil, err
	}
	return NewS3Source(s3.NewFromConfig(*cfg), bucket, key), nil
}

func azblobFactory(_ context.Context, uri *url.URL, _ Options) (Source, error) {
	container, blob, _ := strings.Cut(strings.TrimPrefix(uri.Path, "/"), "/")
	if uri.Host == "" || container == "" || blob == "" {
		return nil, fmt.Errorf("azblob source must look like azblob://account/container/blob, got %q", uri.String())
	}

	client, err := NewAzblobClient(uri.Host)
	if err != nil {
		return nil, err
	}
	return NewAzblobSource(client, uri.Host, container, blob), nil
}
