package shape

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed shapes.cue
var shapesCUE string

// Shape names declared in shapes.cue.
const (
	ScoreReview        = "#ScoreReview"
	Certification      = "#Certification"
	Mention            = "#Mention"
	AboutScoreReview   = "#AboutScoreReview"
	AboutCertification = "#AboutCertification"
	RegionVariant      = "#RegionVariant"
	RegionList         = "#RegionList"
)

// excludes lists, per shape, keys whose joint presence disqualifies a value
// that otherwise unifies with the shape.
var excludes = map[string][]string{
	Certification: {"title", "url"},
}

// NoMatchError reports a value that fits none of the candidate shapes.
type NoMatchError struct {
	Candidates []string
	Reasons    []string // one per candidate, same order
}

func (e *NoMatchError) Error() string {
	parts := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		parts[i] = fmt.Sprintf("%s: %s", c, e.Reasons[i])
	}
	return fmt.Sprintf("value matches none of [%s] (%s)",
		strings.Join(e.Candidates, ", "), strings.Join(parts, "; "))
}

// Matcher holds the compiled shape definitions.
// A cue.Context is not safe for concurrent use, so every match is serialized.
type Matcher struct {
	mu   sync.Mutex
	ctx  *cue.Context
	defs map[string]cue.Value
}

// NewMatcher compiles the embedded shape definitions.
func NewMatcher() (*Matcher, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(shapesCUE, cue.Filename("shapes.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile shapes: %w", err)
	}

	defs := make(map[string]cue.Value)
	for _, name := range []string{
		ScoreReview, Certification, Mention,
		AboutScoreReview, AboutCertification,
		RegionVariant, RegionList,
	} {
		def := root.LookupPath(cue.ParsePath(name))
		if !def.Exists() {
			return nil, fmt.Errorf("shape %s not declared", name)
		}
		defs[name] = def
	}

	return &Matcher{ctx: ctx, defs: defs}, nil
}

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
	defaultErr     error
)

// Default returns the process-wide matcher, compiling it on first use.
func Default() (*Matcher, error) {
	defaultOnce.Do(func() {
		defaultMatcher, defaultErr = NewMatcher()
	})
	return defaultMatcher, defaultErr
}

// Match returns the first candidate shape that the JSON value satisfies.
func Match(data []byte, candidates ...string) (string, error) {
	m, err := Default()
	if err != nil {
		return "", err
	}
	return m.Match(data, candidates...)
}

// Match returns the first candidate shape that the JSON value satisfies.
// Malformed JSON fails before any candidate is tried.
func (m *Matcher) Match(data []byte, candidates ...string) (string, error) {
	expr, err := cuejson.Extract("value.json", data)
	if err != nil {
		return "", fmt.Errorf("parse value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value := m.ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return "", fmt.Errorf("build value: %w", err)
	}

	reasons := make([]string, len(candidates))
	for i, name := range candidates {
		def, ok := m.defs[name]
		if !ok {
			return "", fmt.Errorf("unknown shape %s", name)
		}
		err := def.Unify(value).Validate(cue.Concrete(true))
		if err != nil {
			reasons[i] = firstError(err)
			continue
		}
		if keys := excludes[name]; hasAll(value, keys) {
			reasons[i] = fmt.Sprintf("carries %s", strings.Join(keys, " and "))
			continue
		}
		return name, nil
	}

	return "", &NoMatchError{Candidates: candidates, Reasons: reasons}
}

func hasAll(v cue.Value, keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !v.LookupPath(cue.MakePath(cue.Str(k))).Exists() {
			return false
		}
	}
	return true
}

// firstError keeps diagnostics short; CUE reports one error per conflict.
func firstError(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	return errs[0].Error()
}
