package booking

// ResourceCatalog is a static lookup of bookable resources by ID.
// Built once at startup by the seed collaborator; never mutated.
type ResourceCatalog struct {
	byID  map[int]Resource
	order []int
}

func NewResourceCatalog(resources []Resource) ResourceCatalog {
	c := ResourceCatalog{byID: make(map[int]Resource, len(resources))}
	for _, r := range resources {
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.byID[r.ID] = r
		c.order = append(c.order, r.ID)
	}
	return c
}

func (c ResourceCatalog) Get(id int) (Resource, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// All returns the catalog contents in registration order.
func (c ResourceCatalog) All() []Resource {
	out := make([]Resource, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// RequesterCatalog is the static requester lookup, mirror of ResourceCatalog.
type RequesterCatalog struct {
	byID  map[int]Requester
	order []int
}

func NewRequesterCatalog(requesters []Requester) RequesterCatalog {
	c := RequesterCatalog{byID: make(map[int]Requester, len(requesters))}
	for _, r := range requesters {
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.byID[r.ID] = r
		c.order = append(c.order, r.ID)
	}
	return c
}

func (c RequesterCatalog) Get(id int) (Requester, bool) {
	r, ok := c.byID[id]
	return r, ok
}

func (c RequesterCatalog) All() []Requester {
	out := make([]Requester, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
