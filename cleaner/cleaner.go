package cleaner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Process runs the text pipeline on one document: strip comments, check the
// blacklist, rewrite, normalize. When the document is rejected the matched
// marker is returned and out is empty.
func Process(src string, bl Blacklist, rules RewriteRules) (out string, marker string, ok bool) {
	stripped := StripComments(src)
	if m, found := bl.Match(stripped); found {
		return "", m, false
	}
	return Normalize(rules.Apply(stripped)), "", true
}

// Options configures a cleaning run. Zero values fall back to the defaults.
type Options struct {
	Dir    string
	Ext    string
	Prefix string

	Blacklist Blacklist
	Rules     RewriteRules

	// Namespace defaults to the live contents of Dir.
	Namespace Namespace
	Rand      *rand.Rand

	// DeleteFirst removes every input before the accept/reject decision and
	// before its replacement is written.
	DeleteFirst bool

	// Progress receives one "<seq>: <name>" line per accepted document.
	Progress io.Writer
	Logger   *zap.Logger
}

// Summary counts what a run did.
type Summary struct {
	Seen     int
	Accepted int
	Rejected int
	// ByMarker counts rejections by the first marker that matched.
	ByMarker map[string]int
}

// Cleaner holds the state of a single run: the sequence counter and the
// output namespace.
type Cleaner struct {
	dir         string
	ext         string
	blacklist   Blacklist
	rules       RewriteRules
	namespace   Namespace
	namer       *Namer
	deleteFirst bool
	progress    io.Writer
	log         *zap.Logger

	seq int
}

func New(opts Options) *Cleaner {
	c := &Cleaner{
		dir:         opts.Dir,
		ext:         opts.Ext,
		blacklist:   opts.Blacklist,
		rules:       opts.Rules,
		namespace:   opts.Namespace,
		deleteFirst: opts.DeleteFirst,
		progress:    opts.Progress,
		log:         opts.Logger,
	}
	if c.dir == "" {
		c.dir = "."
	}
	if c.ext == "" {
		c.ext = DefaultExt
	}
	if c.blacklist == nil {
		c.blacklist = DefaultBlacklist
	}
	if c.rules == nil {
		c.rules = DefaultRewriteRules
	}
	if c.namespace == nil {
		c.namespace = DirNamespace{Dir: c.dir}
	}
	if c.progress == nil {
		c.progress = io.Discard
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	c.namer = NewNamer(prefix, c.ext, opts.Rand)
	return c
}

// Sources lists the regular files in the directory whose name ends in the
// source extension, in directory listing order.
func (c *Cleaner) Sources() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.dir, err)
	}
	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), c.ext) {
			continue
		}
		if !e.Type().IsRegular() {
			c.log.Debug("skipping non-regular entry", zap.String("name", e.Name()))
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Run processes every source file found when it starts. Inputs are removed
// whether or not they are accepted. The first I/O error aborts the run;
// files already handled stay handled.
func (c *Cleaner) Run() (*Summary, error) {
	names, err := c.Sources()
	if err != nil {
		return nil, err
	}
	c.log.Info("cleaning corpus", zap.String("dir", c.dir), zap.Int("files", len(names)))

	sum := &Summary{ByMarker: make(map[string]int)}
	for _, name := range names {
		sum.Seen++
		accepted, marker, err := c.processFile(name)
		if err != nil {
			return sum, err
		}
		if accepted {
			sum.Accepted++
		} else {
			sum.Rejected++
			sum.ByMarker[marker]++
		}
	}
	c.log.Info("corpus cleaned",
		zap.Int("seen", sum.Seen),
		zap.Int("accepted", sum.Accepted),
		zap.Int("rejected", sum.Rejected),
	)
	return sum, nil
}

func (c *Cleaner) processFile(name string) (bool, string, error) {
	path := filepath.Join(c.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return false, "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if c.deleteFirst {
		if err := c.remove(name); err != nil {
			return false, "", err
		}
	}

	out, marker, ok := Process(string(data), c.blacklist, c.rules)
	if !ok {
		c.log.Debug("rejected", zap.String("file", name), zap.String("marker", marker))
		if !c.deleteFirst {
			if err := c.remove(name); err != nil {
				return false, "", err
			}
		}
		return false, marker, nil
	}

	c.seq++
	outName, err := c.namer.Name(c.seq, c.namespace)
	if err != nil {
		return false, "", err
	}
	if err := os.WriteFile(filepath.Join(c.dir, outName), []byte(out), 0o644); err != nil {
		return false, "", fmt.Errorf("failed to write %s: %w", outName, err)
	}
	if !c.deleteFirst {
		if err := c.remove(name); err != nil {
			return false, "", err
		}
	}
	c.log.Debug("accepted",
		zap.String("file", name),
		zap.String("output", outName),
		zap.Int("in_bytes", len(data)),
		zap.Int("out_bytes", len(out)),
	)
	fmt.Fprintf(c.progress, "%d: %s\n", c.seq, outName)
	return true, "", nil
}

func (c *Cleaner) remove(name string) error {
	err := os.Remove(filepath.Join(c.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
