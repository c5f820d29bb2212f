package test

import "sync"

// Category names a kind of tracked resource. The value doubles as the collection path segment
// of the resource, so a tracked ID is deleted with DELETE /<category>/<id>.
type Category string

// Tracked resource categories
const (
	Users          Category = "users"
	Establishments Category = "establishments"
	Products       Category = "products"
	Categories     Category = "categories"
	Customers      Category = "customers"
	Orders         Category = "orders"
	Tables         Category = "tables"
	Coupons        Category = "coupons"
)

// CleanupOrder is the order cleanup deletes categories in: dependents before what they
// reference, the owning user last.
var CleanupOrder = []Category{
	Orders,
	Products,
	Categories,
	Tables,
	Coupons,
	Customers,
	Establishments,
	Users,
}

// TrackedID is one resource scheduled for deletion
type TrackedID struct {
	Category Category
	ID       string
}

// Tracker records the IDs of resources created during a test run. It is safe for concurrent use.
type Tracker struct {
	mu  sync.Mutex
	ids map[Category][]string
}

// NewTracker returns an empty tracker
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[Category][]string)}
}

// Track appends id to the category. Empty IDs are ignored.
func (t *Tracker) Track(category Category, id string) {
	if id == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids[category] = append(t.ids[category], id)
}

// IDs returns a copy of the IDs tracked under category, in insertion order
func (t *Tracker) IDs(category Category) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.ids[category]))
	copy(out, t.ids[category])
	return out
}

// Len returns the number of tracked IDs over all categories
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, ids := range t.ids {
		n += len(ids)
	}
	return n
}

// Drain empties the tracker and returns its IDs in CleanupOrder. Categories outside
// CleanupOrder are dropped.
func (t *Tracker) Drain() []TrackedID {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []TrackedID
	for _, category := range CleanupOrder {
		for _, id := range t.ids[category] {
			out = append(out, TrackedID{Category: category, ID: id})
		}
	}
	t.ids = make(map[Category][]string)
	return out
}
