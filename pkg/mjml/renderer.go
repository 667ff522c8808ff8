// Package mjml renders MJML (Mailjet Markup Language) templates to responsive HTML.
//
// Templates are Go html/template sources whose output is MJML; the executed MJML is then
// converted to HTML with gomjml. Field values are escaped by html/template before MJML
// conversion, so user input never reaches the MJML parser as markup.
package mjml

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"sync"
	"time"

	"github.com/preslavrachev/gomjml/mjml"
	"github.com/zeromicro/go-zero/core/collection"
)

const (
	// DefaultCacheLimit bounds the number of rendered documents kept in memory.
	DefaultCacheLimit = 512
	cacheExpiry       = 10 * time.Minute
)

// Renderer handles MJML template loading, caching, and rendering
type Renderer struct {
	templates   map[string]*template.Template
	generations map[string]int // bumped on every reload of a name
	cache       *collection.Cache
	mu          sync.RWMutex
	options     *RenderOptions
}

// RenderOptions configures the MJML renderer behavior
type RenderOptions struct {
	EnableCache bool // Cache rendered HTML per (template, data)
	EnableDebug bool // Add debug attributes to HTML
	CacheLimit  int  // Most recently used entries kept
}

// RendererOption configures the renderer
type RendererOption func(*RenderOptions)

// WithCache enables HTML output caching for performance
func WithCache(enabled bool) RendererOption {
	return func(opts *RenderOptions) {
		opts.EnableCache = enabled
	}
}

// WithCacheLimit caps the output cache at n entries, evicting the least recently used.
func WithCacheLimit(n int) RendererOption {
	return func(opts *RenderOptions) {
		if n > 0 {
			opts.CacheLimit = n
		}
	}
}

// WithDebug adds debug attributes to generated HTML
func WithDebug(enabled bool) RendererOption {
	return func(opts *RenderOptions) {
		opts.EnableDebug = enabled
	}
}

// NewRenderer creates a new MJML renderer with the specified options
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	options := &RenderOptions{CacheLimit: DefaultCacheLimit}
	for _, opt := range opts {
		opt(options)
	}

	r := &Renderer{
		templates:   make(map[string]*template.Template),
		generations: make(map[string]int),
		options:     options,
	}

	if options.EnableCache {
		cache, err := collection.NewCache(cacheExpiry,
			collection.WithName("mjml-render"),
			collection.WithLimit(options.CacheLimit))
		if err != nil {
			return nil, fmt.Errorf("create render cache: %w", err)
		}
		r.cache = cache
	}

	return r, nil
}

// LoadTemplate loads a single MJML template with the given name
func (r *Renderer) LoadTemplate(name, content string) error {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[name] = tmpl
	r.generations[name]++

	return nil
}

// LoadTemplateFromFS loads a single MJML template from a file in fsys.
func (r *Renderer) LoadTemplateFromFS(fsys fs.FS, name, file string) error {
	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", file, err)
	}

	return r.LoadTemplate(name, string(content))
}

// RenderTemplate renders a template with the given data to HTML
func (r *Renderer) RenderTemplate(name string, data any) (string, error) {
	r.mu.RLock()
	tmpl, exists := r.templates[name]
	generation := r.generations[name]
	r.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	start := time.Now()
	defer func() {
		renderDuration.ObserveFloat(time.Since(start).Seconds(), name)
	}()

	var cacheKey string
	if r.cache != nil {
		key, err := r.createCacheKey(name, generation, data)
		if err != nil {
			return "", fmt.Errorf("failed to create cache key for template %s: %w", name, err)
		}
		cacheKey = key

		if cached, found := r.cache.Get(cacheKey); found {
			renderCacheHits.Inc(name)
			return cached.(string), nil
		}
		renderCacheMisses.Inc(name)
	}

	var mjmlBuf bytes.Buffer
	if err := tmpl.Execute(&mjmlBuf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	html, err := r.renderMJML(mjmlBuf.String())
	if err != nil {
		return "", fmt.Errorf("failed to render MJML for template %s: %w", name, err)
	}

	if r.cache != nil {
		r.cache.Set(cacheKey, html)
	}

	return html, nil
}

// renderMJML converts MJML content to HTML using gomjml
func (r *Renderer) renderMJML(mjmlContent string) (string, error) {
	var mjmlOpts []mjml.RenderOption

	if r.options.EnableDebug {
		mjmlOpts = append(mjmlOpts, mjml.WithDebugTags(true))
	}

	if r.options.EnableCache {
		mjmlOpts = append(mjmlOpts, mjml.WithCache())
	}

	html, err := mjml.Render(mjmlContent, mjmlOpts...)
	if err != nil {
		return "", fmt.Errorf("gomjml render failed: %w", err)
	}

	return html, nil
}

// createCacheKey creates a deterministic cache key based on template name, load generation and data content
func (r *Renderer) createCacheKey(name string, generation int, data any) (string, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize data for caching: %w", err)
	}

	hasher := sha256.New()
	hasher.Write([]byte(name))
	hasher.Write(dataBytes)
	hash := fmt.Sprintf("%x", hasher.Sum(nil))

	return fmt.Sprintf("%s_%d_%s", name, generation, hash[:16]), nil
}
