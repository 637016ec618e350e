package ledger

import (
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/expiry"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultUndoWindow bounds how long a pending undo stays invokable. It
// mirrors the lifetime of the snackbar that surfaces the action.
const DefaultUndoWindow = 10 * time.Second

type UndoKind string

const (
	UndoRemove     UndoKind = "remove"
	UndoToggleUsed UndoKind = "toggle_used"
)

// UndoToken describes the currently pending undo so the UI can render it.
type UndoToken struct {
	Kind      UndoKind  `json:"kind"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SortKey string

const (
	SortByName         SortKey = "name"
	SortByExpiry       SortKey = "expiry"
	SortByPrice        SortKey = "price"
	SortByStorage      SortKey = "storage"
	SortByPurchaseDate SortKey = "purchase_date"
)

// Filter narrows a projection. Nil fields match everything.
type Filter struct {
	Storage *entities.StorageMode
	Used    *bool
}

type (
	// Store is the mutable item collection. Every destructive mutation
	// (remove, used-toggle) installs a pending undo; routine field edits
	// do not. Operations addressing an id that is no longer present are
	// silent no-ops. All operations are atomic with respect to readers.
	Store interface {
		Add(items ...entities.Item)
		Items() []entities.Item
		Get(id uuid.UUID) (entities.Item, bool)
		Len() int

		RemoveOne(id uuid.UUID) (UndoToken, bool)
		RemoveMany(ids []uuid.UUID) (UndoToken, bool)
		ToggleUsed(id uuid.UUID, now time.Time) (UndoToken, bool)
		Undo() bool
		PendingUndo() (UndoToken, bool)

		SetName(id uuid.UUID, name string) bool
		SetQuantity(id uuid.UUID, quantity int) bool
		SetStorageMode(id uuid.UUID, mode entities.StorageMode) bool
		SetOverrideExpiry(id uuid.UUID, override *time.Time) bool
		ShiftPurchaseDates(ids []uuid.UUID, purchasedAt time.Time) int

		List(key SortKey, descending bool, filter Filter) []entities.Item
	}

	itemStore struct {
		mu         sync.Mutex
		items      []entities.Item
		pending    *undoAction
		undoWindow time.Duration
		clock      func() time.Time
	}

	undoAction struct {
		token UndoToken
		apply func(s *itemStore)
	}
)

func NewStore() Store {
	return NewStoreWithWindow(DefaultUndoWindow)
}

func NewStoreWithWindow(window time.Duration) Store {
	return &itemStore{undoWindow: window, clock: time.Now}
}

func (s *itemStore) Add(items ...entities.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

func (s *itemStore) Items() []entities.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *itemStore) Get(id uuid.UUID) (entities.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return entities.Item{}, false
}

func (s *itemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// RemoveOne deletes the item by id. The pending undo re-inserts it at its
// original position, clamped to the store's length at restore time.
func (s *itemStore) RemoveOne(id uuid.UUID) (UndoToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return UndoToken{}, false
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	token := UndoToken{Kind: UndoRemove, Count: 1, ExpiresAt: s.clock().Add(s.undoWindow)}
	s.pending = &undoAction{
		token: token,
		apply: func(st *itemStore) {
			st.insertAt(idx, removed)
		},
	}
	return token, true
}

// RemoveMany deletes a batch. Pairs are captured ascending by index before
// removal, removed in descending-index order so earlier indices stay
// stable, and restored ascending so the batch's relative order survives
// even though the store length changes during both loops.
func (s *itemStore) RemoveMany(ids []uuid.UUID) (UndoToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type pair struct {
		idx  int
		item entities.Item
	}
	var pairs []pair
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if idx := s.indexOf(id); idx >= 0 {
			pairs = append(pairs, pair{idx: idx, item: s.items[idx]})
		}
	}
	if len(pairs) == 0 {
		return UndoToken{}, false
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].idx < pairs[j].idx })

	for i := len(pairs) - 1; i >= 0; i-- {
		idx := pairs[i].idx
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}

	token := UndoToken{Kind: UndoRemove, Count: len(pairs), ExpiresAt: s.clock().Add(s.undoWindow)}
	s.pending = &undoAction{
		token: token,
		apply: func(st *itemStore) {
			for _, p := range pairs {
				st.insertAt(p.idx, p.item)
			}
		},
	}
	return token, true
}

// ToggleUsed flips the used flag, stamping or clearing usedAt. The undo
// restores the exact prior flag and timestamp rather than re-toggling,
// since a re-toggle after a delay would stamp a different usedAt.
func (s *itemStore) ToggleUsed(id uuid.UUID, now time.Time) (UndoToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return UndoToken{}, false
	}
	prevUsed := s.items[idx].IsUsed
	prevAt := s.items[idx].UsedAt

	if prevUsed {
		s.items[idx].IsUsed = false
		s.items[idx].UsedAt = nil
	} else {
		s.items[idx].IsUsed = true
		stamped := now
		s.items[idx].UsedAt = &stamped
	}

	token := UndoToken{Kind: UndoToggleUsed, Count: 1, ExpiresAt: s.clock().Add(s.undoWindow)}
	s.pending = &undoAction{
		token: token,
		apply: func(st *itemStore) {
			if i := st.indexOf(id); i >= 0 {
				st.items[i].IsUsed = prevUsed
				st.items[i].UsedAt = prevAt
			}
		},
	}
	return token, true
}

// Undo applies the pending undo if it is still live. Expired or absent
// undos report false.
func (s *itemStore) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return false
	}
	action := s.pending
	s.pending = nil
	if s.clock().After(action.token.ExpiresAt) {
		return false
	}
	action.apply(s)
	return true
}

func (s *itemStore) PendingUndo() (UndoToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || s.clock().After(s.pending.token.ExpiresAt) {
		return UndoToken{}, false
	}
	return s.pending.token, true
}

func (s *itemStore) SetName(id uuid.UUID, name string) bool {
	return s.mutate(id, func(it *entities.Item) {
		it.Name = name
	})
}

// SetQuantity clamps to a minimum of 1.
func (s *itemStore) SetQuantity(id uuid.UUID, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(id, func(it *entities.Item) {
		it.Quantity = quantity
	})
}

// SetStorageMode refiles the item without touching its estimates.
func (s *itemStore) SetStorageMode(id uuid.UUID, mode entities.StorageMode) bool {
	return s.mutate(id, func(it *entities.Item) {
		it.SelectedStorage = mode
	})
}

// SetOverrideExpiry sets or clears (nil) the user override.
func (s *itemStore) SetOverrideExpiry(id uuid.UUID, override *time.Time) bool {
	return s.mutate(id, func(it *entities.Item) {
		it.OverrideExpiry = override
	})
}

// ShiftPurchaseDates rebases each addressed item onto the new purchase
// date, moving its storage estimates and any override by the same delta
// so relative offsets are preserved. Returns how many items were shifted.
func (s *itemStore) ShiftPurchaseDates(ids []uuid.UUID, purchasedAt time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	shifted := 0
	for _, id := range ids {
		idx := s.indexOf(id)
		if idx < 0 {
			continue
		}
		it := &s.items[idx]
		delta := purchasedAt.Sub(it.PurchasedAt)
		it.PurchasedAt = purchasedAt
		it.ExpiryByStorage = it.ExpiryByStorage.Shift(delta)
		if it.OverrideExpiry != nil {
			moved := it.OverrideExpiry.Add(delta)
			it.OverrideExpiry = &moved
		}
		shifted++
	}
	return shifted
}

// List returns a filtered, sorted snapshot.
func (s *itemStore) List(key SortKey, descending bool, filter Filter) []entities.Item {
	items := s.Items()

	out := items[:0:0]
	for _, it := range items {
		if filter.Storage != nil && it.SelectedStorage != *filter.Storage {
			continue
		}
		if filter.Used != nil && it.IsUsed != *filter.Used {
			continue
		}
		out = append(out, it)
	}

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b entities.Item) bool {
	switch key {
	case SortByExpiry:
		return func(a, b entities.Item) bool {
			return effectiveOrFarFuture(a).Before(effectiveOrFarFuture(b))
		}
	case SortByPrice:
		return func(a, b entities.Item) bool {
			return a.EffectiveTotalCost() < b.EffectiveTotalCost()
		}
	case SortByStorage:
		return func(a, b entities.Item) bool {
			return storageRank(a.SelectedStorage) < storageRank(b.SelectedStorage)
		}
	case SortByPurchaseDate:
		return func(a, b entities.Item) bool {
			return a.PurchasedAt.Before(b.PurchasedAt)
		}
	default:
		return func(a, b entities.Item) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

// Items without a resolvable expiry sort after everything dated.
func effectiveOrFarFuture(it entities.Item) time.Time {
	if t, ok := expiry.EffectiveExpiry(it); ok {
		return t
	}
	return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
}

func storageRank(mode entities.StorageMode) int {
	switch mode {
	case entities.StoragePantry:
		return 0
	case entities.StorageFridge:
		return 1
	default:
		return 2
	}
}

func (s *itemStore) mutate(id uuid.UUID, fn func(*entities.Item)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	fn(&s.items[idx])
	return true
}

func (s *itemStore) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *itemStore) insertAt(idx int, it entities.Item) {
	if idx > len(s.items) {
		idx = len(s.items)
	}
	s.items = append(s.items, entities.Item{})
	copy(s.items[idx+1:], s.items[idx:])
	s.items[idx] = it
}
