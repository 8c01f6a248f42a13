package tailcss

import (
	"context"
	"runtime"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/compose"
	"github.com/benbjohnson/tailcss/expand"
	"github.com/benbjohnson/tailcss/parser"
	"github.com/benbjohnson/tailcss/resolver"
	"github.com/benbjohnson/tailcss/theme"
	"github.com/benbjohnson/tailcss/variant"
)

// DefaultCacheSize is the number of class tokens a Generator remembers.
const DefaultCacheSize = 4096

// Generator turns class tokens into an ordered rule set.
//
// Every token goes through the same pipeline: grouped syntax is expanded,
// each resulting class is tokenized, theme references in its arbitrary value
// are substituted, the utility is resolved to declarations and the composer
// wraps them in a selector and at-rules. Tokens that fail at any step are
// left out of the result and never fail the build.
//
// A Generator is safe for concurrent use.
type Generator struct {
	logger    *zap.Logger
	workers   int
	registry  *variant.Registry
	theme     *theme.Theme
	resolver  resolver.Resolver
	metrics   *Metrics
	cacheSize int

	expander *expand.Expander
	composer *compose.Composer
	cache    *lru.Cache[string, *outcome]
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Skipped tokens are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithWorkers sets the number of goroutines used by Generate.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// WithRegistry sets the variant registry.
func WithRegistry(r *variant.Registry) Option {
	return func(g *Generator) { g.registry = r }
}

// WithTheme sets the theme used for theme() references and, unless
// WithResolver is also given, for the default resolver.
func WithTheme(t *theme.Theme) Option {
	return func(g *Generator) { g.theme = t }
}

// WithResolver replaces the default utility resolver.
func WithResolver(r resolver.Resolver) Option {
	return func(g *Generator) { g.resolver = r }
}

// WithCacheSize sets the number of tokens remembered between calls to
// Generate. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(g *Generator) { g.cacheSize = n }
}

// WithMetrics reports generator activity to m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator returns a generator using the default registry, theme and
// resolver unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:    zap.NewNop(),
		workers:   runtime.GOMAXPROCS(0),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.workers < 1 {
		g.workers = 1
	}
	if g.registry == nil {
		g.registry = variant.Default()
	}
	if g.theme == nil {
		g.theme = theme.Default()
	}
	if g.resolver == nil {
		g.resolver = resolver.Default(g.theme)
	}
	if g.cacheSize > 0 {
		if c, err := lru.New[string, *outcome](g.cacheSize); err == nil {
			g.cache = c
		}
	}

	g.expander = expand.New(g.registry)
	g.composer = compose.New(g.registry)
	return g
}

// Result is the output of Generate.
type Result struct {
	// Rules holds one rule per distinct at-rule chain and selector.
	Rules *ast.RuleSet

	// Skipped lists the tokens that could not be expanded or tokenized.
	Skipped parser.ErrorList

	// Unknown lists canonical classes that parsed but matched no utility or
	// used an unknown variant, in first-seen order.
	Unknown []string
}

// outcome is the cached result of a single token.
type outcome struct {
	rules   []*ast.Rule
	skipped []error
	unknown []string
}

// shard is the slice of work done by one goroutine.
type shard struct {
	rules   *ast.RuleSet
	skipped parser.ErrorList
	unknown []string
}

// Generate builds the rule set for classes. Each worker handles a contiguous
// range of classes and the partial sets are merged in range order, so the
// result doesn't depend on the number of workers. Returns an error only if
// ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, classes []string) (*Result, error) {
	start := time.Now()

	n := min(g.workers, len(classes))
	if n < 1 {
		n = 1
	}
	size := (len(classes) + n - 1) / n
	shards := make([]shard, n)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range shards {
		lo, hi := min(i*size, len(classes)), min((i+1)*size, len(classes))
		s := &shards[i]
		s.rules = ast.NewRuleSet()

		eg.Go(func() error {
			for seq := lo; seq < hi; seq++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				g.generate(s, seq, classes[seq])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Rules: ast.NewRuleSet()}
	seen := make(map[string]struct{})
	for _, s := range shards {
		result.Rules.Merge(s.rules)
		result.Skipped = append(result.Skipped, s.skipped...)
		for _, name := range s.unknown {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				result.Unknown = append(result.Unknown, name)
			}
		}
	}

	if g.metrics != nil {
		g.metrics.Rules.Add(float64(result.Rules.Len()))
	}
	g.logger.Info("generated rules",
		zap.Int("classes", len(classes)),
		zap.Int("rules", result.Rules.Len()),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("unknown", len(result.Unknown)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// generate adds the rules for token to s.
func (g *Generator) generate(s *shard, seq int, token string) {
	o := g.lookup(token)

	for _, r := range o.rules {
		r = r.Clone()
		r.Seq = seq
		s.rules.Insert(r)
	}
	for _, err := range o.skipped {
		g.logger.Debug("skip class", zap.String("class", token), zap.Error(err))
		s.skipped = append(s.skipped, err)
	}
	for _, name := range o.unknown {
		g.logger.Debug("unknown class", zap.String("class", name))
		s.unknown = append(s.unknown, name)
	}

	if g.metrics != nil {
		g.metrics.Tokens.WithLabelValues(OutcomeGenerated).Add(float64(len(o.rules)))
		g.metrics.Tokens.WithLabelValues(OutcomeSkipped).Add(float64(len(o.skipped)))
		g.metrics.Tokens.WithLabelValues(OutcomeUnknown).Add(float64(len(o.unknown)))
	}
}

// lookup returns the outcome for token from the cache or builds it.
// Cached outcomes are shared and must not be modified.
func (g *Generator) lookup(token string) *outcome {
	if g.cache != nil {
		if o, ok := g.cache.Get(token); ok {
			if g.metrics != nil {
				g.metrics.CacheHits.Inc()
			}
			return o
		}
	}

	o := g.build(token)
	if g.cache != nil {
		if g.metrics != nil {
			g.metrics.CacheMisses.Inc()
		}
		g.cache.Add(token, o)
	}
	return o
}

func (g *Generator) build(token string) *outcome {
	o := &outcome{}

	classes, grouped, err := g.expander.Expand(token)
	if err != nil {
		o.skipped = append(o.skipped, err)
		return o
	}
	source := ""
	if grouped {
		source = token
	} else {
		classes = []string{token}
	}

	for _, raw := range classes {
		c, err := parser.Parse(raw)
		if err != nil {
			o.skipped = append(o.skipped, err)
			continue
		}
		c.Source = source

		// Arbitrary properties, e.g. "[color:theme(colors.red.500)]".
		if strings.HasPrefix(c.Utility, "[") {
			if c.Utility, err = g.theme.Expand(c.Utility); err != nil {
				o.skipped = append(o.skipped, err)
				continue
			}
		}

		arbitrary := c.Arbitrary()
		if arbitrary != nil {
			v, err := g.theme.Expand(*arbitrary)
			if err != nil {
				o.skipped = append(o.skipped, err)
				continue
			}
			arbitrary = &v
		}

		decls, ok := g.resolver.Resolve(c.Utility, arbitrary)
		if !ok {
			o.unknown = append(o.unknown, c.Raw)
			continue
		}

		rule, ok := g.composer.Compose(c, decls)
		if !ok {
			o.unknown = append(o.unknown, c.Raw)
			continue
		}
		o.rules = append(o.rules, rule)
	}
	return o
}
