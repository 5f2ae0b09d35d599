package eventstore

import (
	"cmp"
	"slices"
)

// Filter selects a "dynamic event stream". It is an OR over its FilterItem(s).
// An empty Filter matches every event.
type Filter struct {
	items []FilterItem
}

// Items returns the FilterItem(s) in the order they were built.
func (f Filter) Items() []FilterItem {
	return f.items
}

// FilterItem is (eventType OR eventType...) AND (predicate OP predicate...) where OP is AND or OR.
// Either side may be empty.
type FilterItem struct {
	eventTypes             []string
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) EventTypes() []string {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

// FilterPredicate matches a top level string field of the JSON payload.
type FilterPredicate struct {
	key string
	val string
}

// P builds a FilterPredicate for payload field key with value val.
func P(key string, val string) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() string {
	return fp.key
}

func (fp FilterPredicate) Val() string {
	return fp.val
}

// FilterBuilder is the entry point of the fluent filter API. The builder interfaces only allow
// combinations that make sense for a consistency boundary:
//
//   - (eventType OR eventType...)
//   - (predicate OR predicate...) or (predicate AND predicate...)
//   - (eventType OR eventType...) AND (predicate OR/AND predicate...)
//   - any of the above OR-ed together via OrMatching()
type FilterBuilder interface {
	Matching() EmptyFilterItemBuilder
	MatchingAnyEvent() Filter
}

type EmptyFilterItemBuilder interface {
	AnyEventTypeOf(eventType string, eventTypes ...string) FilterItemBuilderLackingPredicates
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
}

type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

type FilterItemBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType string, eventTypes ...string) CompletedFilterItemBuilder
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

type CompletedFilterItemBuilder interface {
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildEventFilter starts a new Filter. Finish it with Finalize() or MatchingAnyEvent().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// AnyEventTypeOf adds event types to the current item.
// Empty values are dropped, the rest is sorted and deduplicated.
func (fb filterBuilder) AnyEventTypeOf(eventType string, eventTypes ...string) FilterItemBuilderLackingPredicates {
	fb.currentFilterItem.eventTypes = sanitizeEventTypes(
		append(slices.Clone(fb.currentFilterItem.eventTypes), append([]string{eventType}, eventTypes...)...),
	)

	return fb
}

func (fb filterBuilder) AndAnyEventTypeOf(eventType string, eventTypes ...string) CompletedFilterItemBuilder {
	return fb.AnyEventTypeOf(eventType, eventTypes...)
}

// AnyPredicateOf adds predicates of which at least one must match.
// Partial predicates (empty key or value) are dropped, the rest is sorted and deduplicated.
func (fb filterBuilder) AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes {
	fb.currentFilterItem.predicates = sanitizePredicates(
		append(slices.Clone(fb.currentFilterItem.predicates), append([]FilterPredicate{predicate}, predicates...)...),
	)

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder {
	return fb.AnyPredicateOf(predicate, predicates...)
}

// AllPredicatesOf adds predicates which must all match.
func (fb filterBuilder) AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes {
	fb.currentFilterItem.allPredicatesMustMatch = true

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder {
	return fb.AllPredicatesOf(predicate, predicates...)
}

// OrMatching closes the current item and starts the next one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

func (fb filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)

	return fb.filter
}

func sanitizeEventTypes(eventTypes []string) []string {
	eventTypes = slices.DeleteFunc(eventTypes, func(e string) bool { return e == "" })
	slices.Sort(eventTypes)

	return slices.Clip(slices.Compact(eventTypes))
}

func sanitizePredicates(predicates []FilterPredicate) []FilterPredicate {
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(predicates, func(a, b FilterPredicate) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}

		return cmp.Compare(a.val, b.val)
	})

	return slices.Clip(slices.Compact(predicates))
}
