// Package highlight renders source snippets with terminal syntax colors.
package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is enough for every snippet in both themes.
const DefaultCacheSize = 64

// Chroma styles per theme
const (
	DarkStyle  = "monokai"
	LightStyle = "github"
)

type cacheKey struct {
	dark bool
	lang string
	src  string
}

// Highlighter colors snippets and remembers the results.
type Highlighter struct {
	cache     *lru.Cache[cacheKey, string]
	formatter chroma.Formatter
}

// New creates a highlighter caching up to size rendered snippets.
func New(size int) *Highlighter {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, string](size)
	if err != nil {
		// Only fails for a non-positive size
		panic(err)
	}
	return &Highlighter{
		cache:     cache,
		formatter: formatters.Get("terminal256"),
	}
}

// StyleName returns the chroma style used for a theme.
func StyleName(isDark bool) string {
	if isDark {
		return DarkStyle
	}
	return LightStyle
}

// Highlight returns src colored for lang. Unknown languages are plain text;
// on any formatting error src is returned unchanged.
func (h *Highlighter) Highlight(src, lang string, isDark bool) string {
	key := cacheKey{dark: isDark, lang: lang, src: src}
	if out, ok := h.cache.Get(key); ok {
		return out
	}

	out := h.render(src, lang, isDark)
	h.cache.Add(key, out)
	return out
}

// Len returns the number of cached snippets.
func (h *Highlighter) Len() int {
	return h.cache.Len()
}

// Purge drops every cached snippet.
func (h *Highlighter) Purge() {
	h.cache.Purge()
}

func (h *Highlighter) render(src, lang string, isDark bool) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(StyleName(isDark))
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return strings.TrimRight(buf.String(), "\n")
}
