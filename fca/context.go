package fca

import (
	"sort"
	"sync"
)

// Context is a bipartite relation R ⊆ Objects × Attributes. Objects are
// edit tokens encountered during training; Attributes are lemmas. R is a
// set: adding the same relation twice is a no-op, and adding a relation
// implicitly adds both of its endpoints even if one side has no other
// relations yet.
type Context struct {
	mu sync.RWMutex

	objects    map[string]struct{}
	attributes map[string]struct{}

	// attrOrder records the order attributes were first seen in, so
	// callers that need a stable "first lemma" representative for a group
	// (package cluster) don't have to rely on sorted order.
	attrOrder []string

	// objToAttrs[o] = { a : R(o,a) }, attrToObjs[a] = { o : R(o,a) }.
	objToAttrs map[string]map[string]struct{}
	attrToObjs map[string]map[string]struct{}
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{
		objects:    make(map[string]struct{}),
		attributes: make(map[string]struct{}),
		objToAttrs: make(map[string]map[string]struct{}),
		attrToObjs: make(map[string]map[string]struct{}),
	}
}

// AddRelation records R(object, attribute), adding either endpoint to the
// context if not already present. Idempotent.
func (c *Context) AddRelation(object, attribute string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.objects[object] = struct{}{}
	if _, seen := c.attributes[attribute]; !seen {
		c.attrOrder = append(c.attrOrder, attribute)
	}
	c.attributes[attribute] = struct{}{}

	if c.objToAttrs[object] == nil {
		c.objToAttrs[object] = make(map[string]struct{})
	}
	c.objToAttrs[object][attribute] = struct{}{}

	if c.attrToObjs[attribute] == nil {
		c.attrToObjs[attribute] = make(map[string]struct{})
	}
	c.attrToObjs[attribute][object] = struct{}{}
}

// AttributesInsertionOrder returns every attribute in the order its first
// relation was added, rather than Attributes' sorted order. Used by
// package cluster to pick a group's representative lemma deterministically
// from training order instead of alphabetical order.
func (c *Context) AttributesInsertionOrder() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.attrOrder...)
}

// Objects returns every object in the context, sorted.
func (c *Context) Objects() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.objects)
}

// Attributes returns every attribute in the context, sorted.
func (c *Context) Attributes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.attributes)
}

// AttributesOf returns the attributes related to object, sorted.
func (c *Context) AttributesOf(object string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.objToAttrs[object])
}

// ObjectsOf returns the objects related to attribute, sorted.
func (c *Context) ObjectsOf(attribute string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.attrToObjs[attribute])
}

// Intent computes ∩_{o∈objects} { a : R(o,a) }. With objects empty, the
// result is the full Attributes set.
func (c *Context) Intent(objects []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(objects) == 0 {
		return sortedKeys(c.attributes)
	}
	var acc map[string]struct{}
	for i, o := range objects {
		acc = intersectMap(acc, c.objToAttrs[o], i == 0)
	}
	return sortedKeys(acc)
}

// Extent computes ∩_{a∈attributes} { o : R(o,a) }. With attributes empty,
// the result is the full Objects set.
func (c *Context) Extent(attributes []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(attributes) == 0 {
		return sortedKeys(c.objects)
	}
	var acc map[string]struct{}
	for i, a := range attributes {
		acc = intersectMap(acc, c.attrToObjs[a], i == 0)
	}
	return sortedKeys(acc)
}

// ObjectsClosure computes Extent(Intent(objects)), the closure operator on
// the object side.
func (c *Context) ObjectsClosure(objects []string) []string {
	return c.Extent(c.Intent(objects))
}

// AttributesClosure computes Intent(Extent(attributes)), the closure
// operator on the attribute side. This is the "closure" function threaded
// through the oracle and HORN1 (package oracle, package horn1): an
// attribute set is closed iff it equals its own AttributesClosure.
func (c *Context) AttributesClosure(attributes []string) []string {
	return c.Intent(c.Extent(attributes))
}

// intersectMap intersects acc with next (copying next on the first call).
// When first is true, next is the first operand, so the result is simply a
// copy of next.
func intersectMap(acc, next map[string]struct{}, first bool) map[string]struct{} {
	if first {
		out := make(map[string]struct{}, len(next))
		for k := range next {
			out[k] = struct{}{}
		}
		return out
	}
	out := make(map[string]struct{})
	for k := range acc {
		if _, ok := next[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
