// Package corpus implements collection-level operations over token
// documents: vocabulary and frequency statistics, n-grams, filtering,
// transformation, keyword-in-context search, and token gluing. Every
// operation reduces to per-document work composed from the document, match,
// and split packages.
package corpus

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/corpuskit/corpuskit/internal/document"
	"github.com/corpuskit/corpuskit/pkg/config"
	"github.com/corpuskit/corpuskit/pkg/errors"
	"github.com/corpuskit/corpuskit/pkg/logger"
	"github.com/corpuskit/corpuskit/pkg/metrics"
)

// Corpus is an ordered collection of token documents. Order is significant:
// it defines the row order of any document-term matrix built from the
// corpus. Labels are unique within the corpus and usable as lookup keys.
//
// Per-document operations fan out over a bounded worker pool; operations
// that mutate a document run on exactly one worker per document, so no
// document is ever mutated concurrently.
type Corpus struct {
	docs     []*document.Document
	byLabel  map[string]int
	log      *slog.Logger
	met      *metrics.Metrics
	workers  int
	defaults config.ProcessingConfig
}

// Option configures a Corpus.
type Option func(*Corpus)

// WithWorkers bounds the per-document fan-out. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *Corpus) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithLogger replaces the default component logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Corpus) {
		c.log = log
	}
}

// WithMetrics attaches Prometheus collectors to the corpus operations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Corpus) {
		c.met = m
	}
}

// WithConfig applies the worker-pool size and processing defaults from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(c *Corpus) {
		if cfg.Workers.MaxConcurrent >= 1 {
			c.workers = cfg.Workers.MaxConcurrent
		}
		c.defaults = cfg.Processing
	}
}

// New creates a corpus from docs. Document labels must be unique.
func New(docs []*document.Document, opts ...Option) (*Corpus, error) {
	c := &Corpus{
		docs:    append([]*document.Document(nil), docs...),
		log:     logger.WithComponent("corpus"),
		workers: 1,
		defaults: config.ProcessingConfig{
			ContextLeft:  2,
			ContextRight: 2,
			GlueString:   " ",
			Highlight:    "*",
			NGramJoin:    " ",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.rebuildIndex(); err != nil {
		return nil, err
	}
	return c, nil
}

// Docs returns the documents in corpus order. The slice is shared with the
// corpus and must not be reordered by the caller.
func (c *Corpus) Docs() []*document.Document { return c.docs }

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.docs) }

// Get returns the document with the given label.
func (c *Corpus) Get(label string) (*document.Document, error) {
	i, ok := c.byLabel[label]
	if !ok {
		return nil, errors.Newf(errors.ErrDocumentNotFound, "%q", label)
	}
	return c.docs[i], nil
}

// Labels returns the document labels in corpus order.
func (c *Corpus) Labels() []string {
	labels := make([]string, len(c.docs))
	for i, d := range c.docs {
		labels[i] = d.Label()
	}
	return labels
}

// Lengths returns the logical (live) token count of each document in corpus
// order.
func (c *Corpus) Lengths() []int {
	lengths := make([]int, len(c.docs))
	for i, d := range c.docs {
		lengths[i] = d.LiveLen()
	}
	return lengths
}

// CompactAll replaces every document with its compacted form.
func (c *Corpus) CompactAll() {
	for i, d := range c.docs {
		nd := d.Compact()
		if nd != d && c.met != nil {
			c.met.CompactionsTotal.Inc()
		}
		c.docs[i] = nd
	}
}

// forEach runs fn once per document, fanning out over the worker pool.
// fn must only touch its own document.
func (c *Corpus) forEach(fn func(i int, d *document.Document) error) error {
	if c.workers <= 1 || len(c.docs) <= 1 {
		for i, d := range c.docs {
			if err := fn(i, d); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, d := range c.docs {
		i, d := i, d
		g.Go(func() error {
			return fn(i, d)
		})
	}
	return g.Wait()
}

func (c *Corpus) rebuildIndex() error {
	c.byLabel = make(map[string]int, len(c.docs))
	for i, d := range c.docs {
		if _, exists := c.byLabel[d.Label()]; exists {
			return errors.Newf(errors.ErrDuplicateLabel, "%q", d.Label())
		}
		c.byLabel[d.Label()] = i
	}
	return nil
}
