package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
)

// Session performs one synchronous HTTP request against an absolute URL
// and returns the raw JSON body together with the link relations parsed
// from the response's Link header. It is the only transport primitive the
// pagination cursor depends on; the cursor borrows the session and never
// manages its lifetime.
type Session interface {
	RequestJSON(ctx context.Context, method, url string) (json.RawMessage, Links, error)
}

// Constructor wraps one decoded element of a page into its typed form.
type Constructor[T any] func(raw json.RawMessage) (T, error)

// UnmarshalInto is the default constructor: plain json.Unmarshal into T.
func UnmarshalInto[T any](raw json.RawMessage) (T, error) {
	var v T

	err := json.Unmarshal(raw, &v)
	if err != nil {
		return v, fmt.Errorf("unmarshaling page item: %w", err)
	}

	return v, nil
}

// LinkPolicy decides what happens when a fetched page carries no Link
// header even though the caller expected a paginated resource.
type LinkPolicy int

const (
	// LinkPolicyWarn logs a warning and lets the operation succeed with
	// the page's items. Some Canvas deployments (NTU COOL among them)
	// omit the header on genuinely paginated endpoints, so this is the
	// default.
	LinkPolicyWarn LinkPolicy = iota

	// LinkPolicyStrict turns the missing header into ErrMissingLinkHeader.
	LinkPolicyStrict
)

// Option configures a pagination cursor.
type Option func(*cursorSettings)

type cursorSettings struct {
	logger Logger
	policy LinkPolicy
}

// WithPaginationLogger routes missing-Link warnings to the given logger.
func WithPaginationLogger(logger Logger) Option {
	return func(s *cursorSettings) {
		s.logger = logger
	}
}

// WithLinkPolicy overrides the missing-Link-header policy.
func WithLinkPolicy(policy LinkPolicy) Option {
	return func(s *cursorSettings) {
		s.policy = policy
	}
}

// Pagination is a stateful cursor over a multi-page Canvas result set.
// It tracks the link-relation set of the most recent fetch and an
// accumulated list of materialized items: Next appends, Prev prepends,
// and Current/First/Last never touch the accumulation.
//
// A cursor is synchronous and single-threaded; sharing one instance
// between goroutines is not supported.
type Pagination[T any] struct {
	session  Session
	method   string
	links    Links
	ctor     Constructor[T]
	values   []T
	settings cursorSettings
}

// NewPagination creates a cursor whose initial link set holds exactly one
// relation, next, pointing at seedURL. A nil constructor defaults to
// UnmarshalInto[T].
func NewPagination[T any](session Session, method, seedURL string, ctor Constructor[T], opts ...Option) *Pagination[T] {
	links := Links{RelNext: {URL: seedURL, Rel: RelNext}}

	return NewPaginationFromLinks(session, method, links, ctor, opts...)
}

// NewPaginationFromLinks creates a cursor from a pre-built link set.
func NewPaginationFromLinks[T any](session Session, method string, links Links, ctor Constructor[T], opts ...Option) *Pagination[T] {
	if ctor == nil {
		ctor = UnmarshalInto[T]
	}

	p := &Pagination[T]{
		session: session,
		method:  method,
		links:   links,
		ctor:    ctor,
	}

	for _, opt := range opts {
		opt(&p.settings)
	}

	return p
}

// Links returns the current link-relation set.
func (p *Pagination[T]) Links() Links {
	return p.links
}

// Values returns the items materialized so far, in accumulation order.
func (p *Pagination[T]) Values() []T {
	return p.values
}

// Current re-fetches the page identified by the current relation. The
// accumulated list is never mutated; if update is true, the link set is
// replaced by the one the response carries.
func (p *Pagination[T]) Current(ctx context.Context, update bool) ([]T, error) {
	links, items, err := p.fetch(ctx, RelCurrent)
	if err != nil {
		return nil, err
	}

	if update {
		p.links = links
	}

	return items, nil
}

// Next fetches the next relation. If update is true, the link set is
// replaced and the items are appended to the accumulated list.
func (p *Pagination[T]) Next(ctx context.Context, update bool) ([]T, error) {
	links, items, err := p.fetch(ctx, RelNext)
	if err != nil {
		return nil, err
	}

	if update {
		p.links = links
		p.values = append(p.values, items...)
	}

	return items, nil
}

// Prev fetches the prev relation. If update is true, the link set is
// replaced and the items are prepended to the accumulated list.
func (p *Pagination[T]) Prev(ctx context.Context, update bool) ([]T, error) {
	links, items, err := p.fetch(ctx, RelPrev)
	if err != nil {
		return nil, err
	}

	if update {
		p.links = links
		p.values = append(append(make([]T, 0, len(items)+len(p.values)), items...), p.values...)
	}

	return items, nil
}

// First fetches the first relation. A seek operation: items are returned
// but never merged into the accumulated list.
func (p *Pagination[T]) First(ctx context.Context, update bool) ([]T, error) {
	links, items, err := p.fetch(ctx, RelFirst)
	if err != nil {
		return nil, err
	}

	if update {
		p.links = links
	}

	return items, nil
}

// Last fetches the last relation. A seek operation like First.
func (p *Pagination[T]) Last(ctx context.Context, update bool) ([]T, error) {
	links, items, err := p.fetch(ctx, RelLast)
	if err != nil {
		return nil, err
	}

	if update {
		p.links = links
	}

	return items, nil
}

// Items yields every accumulated item first, then keeps following the
// next relation until the server stops sending one. Iteration resumes
// from the cursor's current state, not from the beginning, and fully
// exhausting it is the only way to learn the true end of the result set.
func (p *Pagination[T]) Items(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range p.values {
			if !yield(v, nil) {
				return
			}
		}

		for p.links.Has(RelNext) {
			items, err := p.Next(ctx, true)
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			for _, v := range items {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// All exhausts the cursor and returns the accumulated items.
func (p *Pagination[T]) All(ctx context.Context) ([]T, error) {
	for p.links.Has(RelNext) {
		_, err := p.Next(ctx, true)
		if err != nil {
			return nil, err
		}
	}

	return p.values, nil
}

// Len forces full materialization and reports the total count. This is a
// whole-collection walk, O(pages) in round trips, not a cheap metadata
// read: Canvas only reveals the true count by serving every page.
func (p *Pagination[T]) Len(ctx context.Context) (int, error) {
	_, err := p.All(ctx)
	if err != nil {
		return 0, err
	}

	return len(p.values), nil
}

// fetch performs exactly one HTTP request for the named relation and
// decodes the page.
func (p *Pagination[T]) fetch(ctx context.Context, rel string) (Links, []T, error) {
	lnk, ok := p.links[rel]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrLinkNotFound, rel)
	}

	body, links, err := p.session.RequestJSON(ctx, p.method, lnk.URL)
	if err != nil {
		return nil, nil, err
	}

	if len(links) == 0 {
		if p.settings.policy == LinkPolicyStrict {
			return nil, nil, fmt.Errorf("%w: %s %s", ErrMissingLinkHeader, p.method, lnk.URL)
		}

		if p.settings.logger != nil {
			p.settings.logger.Warn("paginated response carried no Link header", map[string]interface{}{
				"method": p.method,
				"url":    lnk.URL,
			})
		}
	}

	items, err := decodeItems(body, p.ctor)
	if err != nil {
		return nil, nil, err
	}

	return links, items, nil
}

func decodeItems[T any](body json.RawMessage, ctor Constructor[T]) ([]T, error) {
	var raw []json.RawMessage

	err := json.Unmarshal(body, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCollection, err)
	}

	items := make([]T, 0, len(raw))

	for _, r := range raw {
		// Canvas substitutes null for individual items the caller may
		// not see; keep the slot as the zero value.
		if string(r) == "null" {
			var zero T

			items = append(items, zero)

			continue
		}

		item, err := ctor(r)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// Mode selects how much of a paginated collection an endpoint call
// materializes.
type Mode int

const (
	// ModeSinglePage performs exactly one request and returns the first
	// page only, trading completeness for one-round-trip cost. This is
	// the cheap default most call sites use.
	ModeSinglePage Mode = iota

	// ModeLazy returns a live cursor with zero pages pre-fetched.
	ModeLazy

	// ModeEager exhausts the cursor internally and returns the fully
	// materialized list.
	ModeEager
)

// Paginate is the pagination dispatcher every endpoint builds on. It
// joins base and path, appends the flattened query, and then, depending
// on mode, returns a live cursor (ModeLazy, items nil), a cursor plus the
// fully materialized items (ModeEager), or a nil cursor plus the single
// first page (ModeSinglePage, exactly one request, no follow-on fetch
// regardless of whether the response carries a next link).
func Paginate[T any](ctx context.Context, session Session, method, base, path string, query any, mode Mode, ctor Constructor[T], opts ...Option) (*Pagination[T], []T, error) {
	seed, err := RequestURL(base, path, query)
	if err != nil {
		return nil, nil, err
	}

	switch mode {
	case ModeLazy:
		return NewPagination(session, method, seed, ctor, opts...), nil, nil

	case ModeEager:
		p := NewPagination(session, method, seed, ctor, opts...)

		items, err := p.All(ctx)
		if err != nil {
			return nil, nil, err
		}

		return p, items, nil

	case ModeSinglePage:
		if ctor == nil {
			ctor = UnmarshalInto[T]
		}

		body, _, err := session.RequestJSON(ctx, method, seed)
		if err != nil {
			return nil, nil, err
		}

		items, err := decodeItems(body, ctor)
		if err != nil {
			return nil, nil, err
		}

		return nil, items, nil

	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}
}
