package cart

// Product is the slice of catalog data the cart captures when a line is
// added. Prices are already view-layer numbers at this point.
type Product struct {
	ID       string
	Name     string
	Price    float64
	ImageURL string
}

// Item is a denormalized line captured at add time. It is a snapshot of the
// product, not a live reference: later price or stock changes in the catalog
// do not touch it.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// Store holds one session's cart. At most one item per product id; the
// subtotal is recomputed after every mutation and never drifts from the item
// list. All operations are total: invalid input is a no-op, never an error.
//
// A Store is confined to a single request at a time and needs no locking.
type Store struct {
	items    []Item
	subtotal float64
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a new line for the product, or increments the quantity of the
// existing line with the same product id. A non-positive quantity is rejected
// as a no-op.
func (s *Store) Add(p Product, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity += quantity
			s.recalc()
			return
		}
	}
	s.items = append(s.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	})
	s.recalc()
}

// Remove drops the line with the given product id. Removing an absent id is
// a no-op.
func (s *Store) Remove(productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recalc()
			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1
// is a guard no-op, not a deletion; callers that want the line gone must use
// Remove.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.recalc()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = nil
	s.subtotal = 0
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Subtotal() float64 {
	return s.subtotal
}

func (s *Store) Len() int {
	return len(s.items)
}

// Snapshot returns the serializable state of the cart.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Items: s.Items(), Subtotal: s.subtotal}
}

// FromSnapshot rebuilds a store from persisted state. The subtotal is
// recomputed from the items rather than trusted from the snapshot.
func FromSnapshot(snap Snapshot) *Store {
	s := &Store{items: make([]Item, len(snap.Items))}
	copy(s.items, snap.Items)
	s.recalc()
	return s
}

func (s *Store) recalc() {
	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	s.subtotal = total
}
