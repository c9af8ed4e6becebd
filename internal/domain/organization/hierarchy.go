package organization

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID        = errors.New("organization id is empty")
	ErrDuplicateID    = errors.New("duplicate organization id")
	ErrDanglingParent = errors.New("parent organization does not exist")
	ErrCycle          = errors.New("organization hierarchy contains a cycle")
)

// Hierarchy is an immutable forest of organizations indexed by id.
// It is safe for concurrent readers once constructed.
type Hierarchy struct {
	ordered  []Organization
	byID     map[string]Organization
	children map[string][]string
}

// NewHierarchy validates that orgs form a forest: ids are unique and non-empty,
// every parent reference resolves, and no parent chain loops back on itself.
func NewHierarchy(orgs []Organization) (*Hierarchy, error) {
	h := &Hierarchy{
		ordered:  make([]Organization, 0, len(orgs)),
		byID:     make(map[string]Organization, len(orgs)),
		children: make(map[string][]string, len(orgs)),
	}

	for _, o := range orgs {
		id := strings.TrimSpace(o.ID)
		if id == "" {
			return nil, ErrEmptyID
		}
		if _, ok := h.byID[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		o.ID = id
		if o.ParentID != nil && strings.TrimSpace(*o.ParentID) == "" {
			o.ParentID = nil
		}
		h.byID[id] = o
		h.ordered = append(h.ordered, o)
	}

	for _, o := range h.ordered {
		if o.IsRoot() {
			continue
		}
		parent := *o.ParentID
		if _, ok := h.byID[parent]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingParent, o.ID, parent)
		}
		h.children[parent] = append(h.children[parent], o.ID)
	}

	if path := h.findCycle(); len(path) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(path, " -> "))
	}

	return h, nil
}

// findCycle walks each parent chain once; nodes proven to reach a root are
// remembered so the whole check stays linear.
func (h *Hierarchy) findCycle() []string {
	safe := make(map[string]bool, len(h.byID))
	for _, start := range h.ordered {
		onPath := map[string]int{}
		path := make([]string, 0, 4)
		cur := start.ID
		for {
			if safe[cur] {
				break
			}
			if idx, ok := onPath[cur]; ok {
				return append(path[idx:], cur)
			}
			onPath[cur] = len(path)
			path = append(path, cur)

			o := h.byID[cur]
			if o.IsRoot() {
				break
			}
			cur = *o.ParentID
		}
		for _, id := range path {
			safe[id] = true
		}
	}
	return nil
}

func (h *Hierarchy) Find(id string) (Organization, bool) {
	if h == nil {
		return Organization{}, false
	}
	o, ok := h.byID[strings.TrimSpace(id)]
	return o, ok
}

func (h *Hierarchy) Exists(id string) bool {
	_, ok := h.Find(id)
	return ok
}

// All returns organizations in load order.
func (h *Hierarchy) All() []Organization {
	if h == nil {
		return nil
	}
	out := make([]Organization, len(h.ordered))
	copy(out, h.ordered)
	return out
}

func (h *Hierarchy) Roots() []Organization {
	if h == nil {
		return nil
	}
	out := make([]Organization, 0, 1)
	for _, o := range h.ordered {
		if o.IsRoot() {
			out = append(out, o)
		}
	}
	return out
}

func (h *Hierarchy) Children(id string) []Organization {
	if h == nil {
		return nil
	}
	ids := h.children[id]
	out := make([]Organization, 0, len(ids))
	for _, cid := range ids {
		out = append(out, h.byID[cid])
	}
	return out
}

// Ancestors returns the parent chain of id, nearest first. Unknown ids have no ancestors.
func (h *Hierarchy) Ancestors(id string) []string {
	o, ok := h.Find(id)
	if !ok {
		return nil
	}
	out := make([]string, 0, 4)
	for !o.IsRoot() {
		out = append(out, *o.ParentID)
		o = h.byID[*o.ParentID]
	}
	return out
}

// IsDescendantOrSelf reports whether candidate lies in the subtree rooted at ancestor.
func (h *Hierarchy) IsDescendantOrSelf(candidate, ancestor string) bool {
	if !h.Exists(candidate) || !h.Exists(ancestor) {
		return false
	}
	if candidate == ancestor {
		return true
	}
	for _, a := range h.Ancestors(candidate) {
		if a == ancestor {
			return true
		}
	}
	return false
}
