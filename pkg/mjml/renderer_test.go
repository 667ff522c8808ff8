package mjml

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

const simpleTemplate = `<mjml>
	<mj-head><mj-title>{{.Subject}}</mj-title></mj-head>
	<mj-body>
		<mj-section>
			<mj-column>
				<mj-text>Hello {{.Name}}</mj-text>
			</mj-column>
		</mj-section>
	</mj-body>
</mjml>`

type greeting struct {
	Subject string
	Name    string
}

func newRenderer(t *testing.T, opts ...RendererOption) *Renderer {
	t.Helper()
	renderer, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return renderer
}

// cached reports whether the output for (name, data) is in the cache.
func cached(t *testing.T, r *Renderer, name string, data any) bool {
	t.Helper()
	r.mu.RLock()
	generation := r.generations[name]
	r.mu.RUnlock()

	key, err := r.createCacheKey(name, generation, data)
	if err != nil {
		t.Fatal(err)
	}
	_, ok := r.cache.Get(key)
	return ok
}

func TestRendererOptions(t *testing.T) {
	renderer := newRenderer(t,
		WithCache(true),
		WithDebug(true),
		WithCacheLimit(8),
	)

	if !renderer.options.EnableCache {
		t.Error("Cache option not set")
	}
	if !renderer.options.EnableDebug {
		t.Error("Debug option not set")
	}
	if renderer.options.CacheLimit != 8 {
		t.Errorf("Expected cache limit 8, got %d", renderer.options.CacheLimit)
	}
	if renderer.cache == nil {
		t.Error("cache not created")
	}
}

func TestRendererWithoutCache(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.cache != nil {
		t.Error("cache should be nil when disabled")
	}
	if renderer.options.CacheLimit != DefaultCacheLimit {
		t.Errorf("Expected default cache limit, got %d", renderer.options.CacheLimit)
	}
}

func TestLoadTemplateFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"layouts/one.mjml": {Data: []byte(simpleTemplate)},
	}

	renderer := newRenderer(t)
	if err := renderer.LoadTemplateFromFS(fsys, "one", "layouts/one.mjml"); err != nil {
		t.Fatalf("LoadTemplateFromFS failed: %v", err)
	}
	if _, err := renderer.RenderTemplate("one", greeting{Name: "Ada"}); err != nil {
		t.Errorf("loaded template does not render: %v", err)
	}

	if err := renderer.LoadTemplateFromFS(fsys, "two", "layouts/two.mjml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadTemplateParseError(t *testing.T) {
	renderer := newRenderer(t)
	if err := renderer.LoadTemplate("broken", "<mjml>{{.Name</mjml>"); err == nil {
		t.Error("expected parse error")
	}
}

func TestRenderTemplate(t *testing.T) {
	renderer := newRenderer(t)
	if err := renderer.LoadTemplate("simple", simpleTemplate); err != nil {
		t.Fatal(err)
	}

	html, err := renderer.RenderTemplate("simple", greeting{Subject: "Hi", Name: "Ada"})
	if err != nil {
		t.Fatalf("RenderTemplate failed: %v", err)
	}

	if !strings.Contains(strings.ToLower(html), "<!doctype html>") {
		t.Error("Generated HTML doesn't contain DOCTYPE")
	}
	if !strings.Contains(html, "Hello Ada") {
		t.Error("Generated HTML doesn't contain substituted name")
	}
}

func TestRenderTemplateEscapesMarkup(t *testing.T) {
	renderer := newRenderer(t)
	if err := renderer.LoadTemplate("simple", simpleTemplate); err != nil {
		t.Fatal(err)
	}

	html, err := renderer.RenderTemplate("simple", greeting{Name: "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("RenderTemplate failed: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("field value was not escaped")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer := newRenderer(t)
	if _, err := renderer.RenderTemplate("missing", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestTemplateCache(t *testing.T) {
	renderer := newRenderer(t, WithCache(true))
	if err := renderer.LoadTemplate("cached", simpleTemplate); err != nil {
		t.Fatal(err)
	}

	data := greeting{Subject: "Cached", Name: "Grace"}

	first, err := renderer.RenderTemplate("cached", data)
	if err != nil {
		t.Fatal(err)
	}
	if !cached(t, renderer, "cached", data) {
		t.Error("render output was not cached")
	}

	second, err := renderer.RenderTemplate("cached", data)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("cached render differs from first render")
	}

	// Reloading a template makes earlier output unreachable.
	if err := renderer.LoadTemplate("cached", simpleTemplate); err != nil {
		t.Fatal(err)
	}
	if cached(t, renderer, "cached", data) {
		t.Error("reloaded template still hits old cache entry")
	}
}

func TestTemplateCacheBounded(t *testing.T) {
	const limit = 10
	renderer := newRenderer(t, WithCache(true), WithCacheLimit(limit))
	if err := renderer.LoadTemplate("simple", simpleTemplate); err != nil {
		t.Fatal(err)
	}

	const renders = 5 * limit
	for i := 0; i < renders; i++ {
		if _, err := renderer.RenderTemplate("simple", greeting{Name: fmt.Sprintf("user-%d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	kept := 0
	for i := 0; i < renders; i++ {
		if cached(t, renderer, "simple", greeting{Name: fmt.Sprintf("user-%d", i)}) {
			kept++
		}
	}
	if kept > limit {
		t.Errorf("cache holds %d entries, limit is %d", kept, limit)
	}
	if cached(t, renderer, "simple", greeting{Name: "user-0"}) {
		t.Error("least recently used entry was not evicted")
	}
	if !cached(t, renderer, "simple", greeting{Name: fmt.Sprintf("user-%d", renders-1)}) {
		t.Error("most recent entry missing from cache")
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	renderer := newRenderer(t, WithCache(true))
	data := greeting{Subject: "Key", Name: "Linus"}

	key1, err := renderer.createCacheKey("simple", 1, data)
	if err != nil {
		t.Fatalf("Failed to create cache key: %v", err)
	}
	key2, err := renderer.createCacheKey("simple", 1, data)
	if err != nil {
		t.Fatalf("Failed to create second cache key: %v", err)
	}
	if key1 != key2 {
		t.Errorf("Cache keys are not deterministic: %s != %s", key1, key2)
	}

	key3, err := renderer.createCacheKey("simple", 2, data)
	if err != nil {
		t.Fatal(err)
	}
	if key1 == key3 {
		t.Error("cache key ignores template generation")
	}
	if !strings.HasPrefix(key1, "simple_1_") {
		t.Errorf("Cache key should be prefixed by template name and generation: %s", key1)
	}
}
