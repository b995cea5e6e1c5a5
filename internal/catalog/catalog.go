// Package catalog holds the stimulus images and the fixed word tables used to
// assemble sessions. A Catalog is built once at startup and never mutated.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/heartmarshall/lexical-decision/internal/config"
	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// Catalog is an immutable set of stimulus images grouped into pairs plus the
// factor-word table.
type Catalog struct {
	images      []domain.StimulusImage
	pairs       []domain.Pair
	byFileName  map[string]domain.StimulusImage
	factorWords []domain.FactorWord
	factorSet   map[string]struct{}
	degraded    bool
}

// New builds a Catalog from images and factor words. Pairs keep the order in
// which their first image appears.
func New(images []domain.StimulusImage, words []domain.FactorWord) *Catalog {
	c := &Catalog{
		images:      append([]domain.StimulusImage(nil), images...),
		byFileName:  make(map[string]domain.StimulusImage, len(images)),
		factorWords: append([]domain.FactorWord(nil), words...),
		factorSet:   make(map[string]struct{}, len(words)),
	}

	pairIndex := make(map[domain.PairKey]int)
	for _, img := range c.images {
		c.byFileName[img.FileName] = img
		key := img.Key()
		i, ok := pairIndex[key]
		if !ok {
			i = len(c.pairs)
			pairIndex[key] = i
			c.pairs = append(c.pairs, domain.Pair{Key: key})
		}
		c.pairs[i].Images = append(c.pairs[i].Images, img)
	}

	for _, w := range c.factorWords {
		c.factorSet[strings.ToLower(w.Word)] = struct{}{}
	}

	return c
}

// Stub returns the two-image catalog served when the real table is unavailable.
func Stub(imageBaseURL string) *Catalog {
	images := []domain.StimulusImage{
		newImage(1, "красивый", "уродливый", "stub", imageBaseURL),
		newImage(2, "красивый", "уродливый", "stub", imageBaseURL),
	}
	c := New(images, factorWords)
	c.degraded = true
	return c
}

// Load reads the stimulus table from cfg.Source (a file path or http(s) URL).
// If the source is unreachable or malformed, Load logs a warning and returns
// the stub catalog, unless cfg.Strict is set, in which case it fails.
func Load(ctx context.Context, log *slog.Logger, cfg config.CatalogConfig) (*Catalog, error) {
	log = log.With("component", "catalog")

	result, err := load(ctx, cfg)
	if err != nil {
		if cfg.Strict {
			return nil, fmt.Errorf("load catalog %s: %w", cfg.Source, err)
		}
		log.WarnContext(ctx, "catalog unavailable, serving stub catalog",
			slog.String("source", cfg.Source),
			slog.String("error", err.Error()),
		)
		return Stub(cfg.ImageBaseURL), nil
	}

	c := New(result.Images, factorWords)
	log.InfoContext(ctx, "catalog loaded",
		slog.String("source", cfg.Source),
		slog.Int("lines", result.Stats.TotalLines),
		slog.Int("images", result.Stats.Images),
		slog.Int("pairs", len(c.pairs)),
		slog.Int("skipped_blank", result.Stats.SkippedBlank),
		slog.Int("factor_words", len(c.factorWords)),
	)
	return c, nil
}

func load(ctx context.Context, cfg config.CatalogConfig) (ParseResult, error) {
	rc, err := open(ctx, cfg)
	if err != nil {
		return ParseResult{}, err
	}
	defer rc.Close()

	return Parse(rc, ParseOptions{
		FirstIndex:   cfg.FirstIndex(),
		HasHeader:    cfg.HasHeader,
		ImageBaseURL: cfg.ImageBaseURL,
	})
}

func open(ctx context.Context, cfg config.CatalogConfig) (io.ReadCloser, error) {
	if !cfg.IsRemote() {
		f, err := os.Open(cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Source, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	return &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelReadCloser releases the fetch context when the body is closed.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// Images returns a copy of all catalog images.
func (c *Catalog) Images() []domain.StimulusImage {
	return append([]domain.StimulusImage(nil), c.images...)
}

// Pairs returns a copy of the image pairs.
func (c *Catalog) Pairs() []domain.Pair {
	out := make([]domain.Pair, len(c.pairs))
	for i, p := range c.pairs {
		out[i] = domain.Pair{Key: p.Key, Images: append([]domain.StimulusImage(nil), p.Images...)}
	}
	return out
}

// FactorWords returns a copy of the factor-word table.
func (c *Catalog) FactorWords() []domain.FactorWord {
	return append([]domain.FactorWord(nil), c.factorWords...)
}

// IsFactorWord reports whether word is a real factor word, ignoring case.
func (c *Catalog) IsFactorWord(word string) bool {
	_, ok := c.factorSet[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// ImageByFileName looks up an image by its identity.
func (c *Catalog) ImageByFileName(fileName string) (domain.StimulusImage, bool) {
	img, ok := c.byFileName[fileName]
	return img, ok
}

// Degraded reports whether the catalog is the stub fallback.
func (c *Catalog) Degraded() bool { return c.degraded }

// Len returns the number of catalog images.
func (c *Catalog) Len() int { return len(c.images) }
