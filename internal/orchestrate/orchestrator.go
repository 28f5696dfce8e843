// Package orchestrate drives whole-project conversions: discovery,
// decoding, the AI-first/pattern-fallback pipeline per file, atomic
// output and scaffolding. File failures are isolated; only a broken
// source root aborts a run.
package orchestrate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/hafidaso/CodeTransEval/internal/backend"
	"github.com/hafidaso/CodeTransEval/internal/catalog"
	"github.com/hafidaso/CodeTransEval/internal/llm"
	"github.com/hafidaso/CodeTransEval/internal/metrics"
	"github.com/hafidaso/CodeTransEval/internal/rules"
	"github.com/hafidaso/CodeTransEval/internal/safeio"
	"github.com/hafidaso/CodeTransEval/internal/textenc"
	"github.com/hafidaso/CodeTransEval/internal/walker"
)

// Options tunes a Converter. Zero values get sensible defaults.
type Options struct {
	// UseAI enables model delegation; pattern chains always remain the
	// fallback.
	UseAI bool
	// ForceBackend bypasses the selector when set.
	ForceBackend string
	// PreferSpeed and CostCeiling are passed through to the selector.
	PreferSpeed bool
	CostCeiling float64
	// Workers caps concurrent file conversions. Default 1.
	Workers int
	// AITimeout bounds one model call. Default 60s.
	AITimeout time.Duration
	// CacheSize bounds the AI response cache. Default 256 entries.
	CacheSize int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.AITimeout <= 0 {
		o.AITimeout = 60 * time.Second
	}
	if o.CacheSize <= 0 {
		o.CacheSize = 256
	}
	return o
}

// Converter converts whole projects. Safe for concurrent use.
type Converter struct {
	reg  *backend.Registry
	rec  metrics.Recorder
	log  logrus.FieldLogger
	opts Options
	dial func(ctx context.Context, backendID string) (llm.Client, error)

	cache *lru.Cache[string, string]

	mu      sync.Mutex
	clients map[string]llm.Client
}

func New(reg *backend.Registry, rec metrics.Recorder, log logrus.FieldLogger, opts Options) (*Converter, error) {
	if reg == nil {
		reg = backend.DefaultRegistry(nil)
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	opts = opts.withDefaults()
	cache, err := lru.New[string, string](opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Converter{
		reg:     reg,
		rec:     rec,
		log:     log,
		opts:    opts,
		dial:    llm.Dial,
		cache:   cache,
		clients: map[string]llm.Client{},
	}, nil
}

// SetDialer swaps the client factory. Tests inject fakes here.
func (c *Converter) SetDialer(dial func(ctx context.Context, backendID string) (llm.Client, error)) {
	c.dial = dial
}

// Close releases any dialed model clients.
func (c *Converter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, cl := range c.clients {
		if err := cl.Close(); err != nil {
			c.log.WithError(err).Warnf("closing client for %s", id)
		}
		delete(c.clients, id)
	}
}

// ConvertProject converts every matching file under sourceDir into
// targetDir. Per-file failures land in the result; the returned error
// covers only an unknown conversion id or an unusable source root.
func (c *Converter) ConvertProject(ctx context.Context, sourceDir, targetDir, conversionID string) (ProjectResult, error) {
	res := ProjectResult{
		ConversionID: conversionID,
		SourceDir:    sourceDir,
		TargetDir:    targetDir,
		AIUsed:       c.opts.UseAI,
	}

	spec, err := catalog.Lookup(conversionID)
	if err != nil {
		return res, err
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return res, fmt.Errorf("orchestrate: target root: %w", err)
	}

	walker.Sanitize(sourceDir, c.log)

	files, err := walker.Discover(sourceDir, spec.Extensions)
	if err != nil {
		return res, err
	}
	srcFS, err := safeio.NewSourceFS(sourceDir)
	if err != nil {
		return res, err
	}

	results := make([]FileResult, len(files))
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < c.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i] = c.convertFile(ctx, srcFS, spec, files[i], targetDir)
			}
		}()
	}
	for i := range files {
		idx <- i
	}
	close(idx)
	wg.Wait()

	for _, fr := range results {
		res.Files = append(res.Files, fr)
		if fr.Status == StatusError {
			res.Errors = append(res.Errors, FileError{File: fr.Source, Error: fr.Err})
		}
	}

	if err := writeScaffold(targetDir, conversionID); err != nil {
		c.log.WithError(err).Warn("writing project scaffolding")
		res.Warnings = append(res.Warnings, fmt.Sprintf("scaffolding: %v", err))
	}
	return res, nil
}

// convertFile runs one file through decode, optional AI and the pattern
// fallback. Panics are converted into an error result so a bad file
// cannot take down the batch.
func (c *Converter) convertFile(ctx context.Context, srcFS *safeio.SourceFS, spec catalog.Spec, rel, targetDir string) (fr FileResult) {
	start := time.Now()
	fr = FileResult{Source: rel, Status: StatusError}
	defer func() {
		if p := recover(); p != nil {
			fr.Status = StatusError
			fr.Err = fmt.Sprintf("panic converting %s: %v", rel, p)
			c.log.Error(fr.Err)
		}
		c.record(ctx, spec.ID, fr, time.Since(start))
	}()

	raw, err := srcFS.ReadFile(rel)
	if err != nil {
		fr.Err = fmt.Sprintf("reading source: %v", err)
		return fr
	}
	text, encName, err := textenc.Decode(raw)
	if err != nil {
		fr.Err = fmt.Sprintf("UndecodableFile: %v", err)
		return fr
	}
	if encName != "utf-8" {
		c.log.Debugf("%s decoded as %s", rel, encName)
	}

	out, backendID := "", ""
	if c.opts.UseAI {
		out, backendID = c.convertWithAI(ctx, spec, rel, text)
	}
	aiUsed := out != ""
	if !aiUsed {
		backendID = PatternBackend
		out, err = rules.Convert(text, path.Base(rel), spec.ID)
		if err != nil {
			fr.Err = err.Error()
			return fr
		}
	}

	target, err := walker.TargetPath(targetDir, rel, spec.TargetExt)
	if err != nil {
		fr.Err = err.Error()
		return fr
	}
	if err := safeio.WriteFileAtomic(target, []byte(out), 0o644); err != nil {
		fr.Err = err.Error()
		return fr
	}

	fr.Status = StatusSuccess
	fr.Err = ""
	fr.Backend = backendID
	fr.AIUsed = aiUsed
	fr.Target = walker.MirrorRel(rel, spec.TargetExt)
	return fr
}

// convertWithAI returns the model output and backend id, or empty
// strings when the AI path could not produce a result. AI errors are
// logged, recorded against the backend, and never surfaced.
func (c *Converter) convertWithAI(ctx context.Context, spec catalog.Spec, rel, text string) (string, string) {
	backendID := c.opts.ForceBackend
	if backendID == "" {
		id, err := c.reg.Select(spec.ID, backend.Tier(spec.Complexity), backend.SelectOptions{
			PreferSpeed: c.opts.PreferSpeed,
			CostCeiling: c.opts.CostCeiling,
		})
		if err != nil {
			c.log.WithError(err).Debugf("no backend for %s, using pattern fallback", rel)
			return "", ""
		}
		backendID = id
	}

	key := cacheKey(spec.ID, text)
	if cached, ok := c.cache.Get(key); ok {
		return cached, backendID
	}

	client, err := c.client(ctx, backendID)
	if err != nil {
		c.log.WithError(err).Warnf("dialing backend %s", backendID)
		return "", ""
	}

	prompt, err := spec.RenderPrompt(text)
	if err != nil {
		c.log.WithError(err).Warnf("rendering prompt for %s", rel)
		return "", ""
	}

	callCtx, cancel := context.WithTimeout(ctx, c.opts.AITimeout)
	defer cancel()
	out, err := client.Generate(callCtx, prompt)
	if err != nil || out == "" {
		c.log.WithError(err).Warnf("AI conversion failed for %s via %s", rel, backendID)
		c.reg.RecordOutcome(backendID, false)
		return "", ""
	}
	c.reg.RecordOutcome(backendID, true)
	c.cache.Add(key, out)
	return out, backendID
}

func (c *Converter) client(ctx context.Context, backendID string) (llm.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl, ok := c.clients[backendID]; ok {
		return cl, nil
	}
	cl, err := c.dial(ctx, backendID)
	if err != nil {
		return nil, err
	}
	c.clients[backendID] = cl
	return cl, nil
}

func (c *Converter) record(ctx context.Context, conversionID string, fr FileResult, d time.Duration) {
	r := metrics.Record{
		ConversionID: conversionID,
		SourcePath:   fr.Source,
		Backend:      fr.Backend,
		AIUsed:       fr.AIUsed,
		Success:      fr.Status == StatusSuccess,
		DurationMS:   d.Milliseconds(),
		Error:        fr.Err,
	}
	if err := c.rec.Record(ctx, r); err != nil {
		c.log.WithError(err).Debug("recording conversion metrics")
	}
}

func cacheKey(conversionID, text string) string {
	sum := sha256.Sum256([]byte(text))
	return conversionID + ":" + hex.EncodeToString(sum[:])
}
