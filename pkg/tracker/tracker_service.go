package tracker

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/expiry"
	"FreshKeep-Backend/pkg/ingest"
	"FreshKeep-Backend/pkg/ledger"
	"FreshKeep-Backend/pkg/report"
	"FreshKeep-Backend/pkg/scanner"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	TrackerService interface {
		AddItem(req domain.AddItemRequest) (domain.ItemResponse, error)
		UpdateItem(id string, req domain.UpdateItemRequest) error
		DeleteItem(id string) (domain.UndoResponse, bool, error)
		DeleteItems(req domain.BatchDeleteRequest) (domain.UndoResponse, bool, error)
		ToggleUsed(id string) (domain.UndoResponse, bool, error)
		Undo() bool
		ShiftPurchaseDates(req domain.ShiftPurchaseDateRequest) (int, error)
		GetItems(sortKey, order, storage, used string) []domain.ItemResponse
		ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest) (domain.ScanReceiptResponse, error)
		GetWeeklyReport(weeks int) domain.WeeklyReportResponse
		GetCurrentWeek() entities.WeekBucket
		GetDashboard() report.DashboardStats
	}

	trackerService struct {
		store   ledger.Store
		scanner scanner.Scanner
	}
)

func NewTrackerService(store ledger.Store, sc scanner.Scanner) TrackerService {
	return &trackerService{
		store:   store,
		scanner: sc,
	}
}

func (s *trackerService) AddItem(req domain.AddItemRequest) (domain.ItemResponse, error) {
	expiryDate, err := ingest.ParseInstant(req.ExpiryDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
	}

	purchasedAt := time.Now()
	if req.PurchaseDate != "" {
		purchasedAt, err = ingest.ParseInstant(req.PurchaseDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidPurchaseDate
		}
	}

	if req.Quantity < 1 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	storage := ingest.NormalizeStorage(req.Storage)
	item := entities.Item{
		ID:              uuid.New(),
		Name:            req.Name,
		Quantity:        req.Quantity,
		PurchasedAt:     purchasedAt,
		DefaultStorage:  storage,
		SelectedStorage: storage,
		AmountPerUnit:   req.AmountPerUnit,
		Unit:            req.Unit,
		PricePerUnit:    req.PricePerUnit,
		TotalPrice:      req.TotalPrice,
	}
	switch storage {
	case entities.StoragePantry:
		item.ExpiryByStorage.Pantry = expiryDate
	case entities.StorageFreezer:
		item.ExpiryByStorage.Freezer = expiryDate
	default:
		item.ExpiryByStorage.Fridge = expiryDate
	}
	if item.PricePerUnit == nil && item.TotalPrice != nil {
		fallback := *item.TotalPrice / float64(item.Quantity)
		item.UnitPriceFallback = &fallback
	}

	s.store.Add(item)
	return toItemResponse(item, time.Now()), nil
}

func (s *trackerService) UpdateItem(id string, req domain.UpdateItemRequest) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	// Edits against an id that vanished under a concurrent delete are
	// silent no-ops, so the setters' return values are not checked.
	if req.Name != "" {
		s.store.SetName(itemID, req.Name)
	}
	if req.Quantity > 0 {
		s.store.SetQuantity(itemID, req.Quantity)
	}
	if req.Storage != "" {
		s.store.SetStorageMode(itemID, ingest.NormalizeStorage(req.Storage))
	}
	if req.ClearOverride {
		s.store.SetOverrideExpiry(itemID, nil)
	} else if req.OverrideExpiry != nil {
		override, err := ingest.ParseInstant(*req.OverrideExpiry)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		s.store.SetOverrideExpiry(itemID, &override)
	}
	return nil
}

func (s *trackerService) DeleteItem(id string) (domain.UndoResponse, bool, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.UndoResponse{}, false, domain.ErrParseUUID
	}
	token, ok := s.store.RemoveOne(itemID)
	return toUndoResponse(token), ok, nil
}

func (s *trackerService) DeleteItems(req domain.BatchDeleteRequest) (domain.UndoResponse, bool, error) {
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.UndoResponse{}, false, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}
	token, ok := s.store.RemoveMany(ids)
	return toUndoResponse(token), ok, nil
}

func (s *trackerService) ToggleUsed(id string) (domain.UndoResponse, bool, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.UndoResponse{}, false, domain.ErrParseUUID
	}
	token, ok := s.store.ToggleUsed(itemID, time.Now())
	return toUndoResponse(token), ok, nil
}

func (s *trackerService) Undo() bool {
	return s.store.Undo()
}

func (s *trackerService) ShiftPurchaseDates(req domain.ShiftPurchaseDateRequest) (int, error) {
	purchasedAt, err := ingest.ParseInstant(req.PurchaseDate)
	if err != nil {
		return 0, domain.ErrInvalidPurchaseDate
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return 0, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}
	return s.store.ShiftPurchaseDates(ids, purchasedAt), nil
}

func (s *trackerService) GetItems(sortKey, order, storage, used string) []domain.ItemResponse {
	var filter ledger.Filter
	if storage != "" && storage != "all" {
		mode := ingest.NormalizeStorage(storage)
		filter.Storage = &mode
	}
	switch used {
	case "used":
		yes := true
		filter.Used = &yes
	case "unused":
		no := false
		filter.Used = &no
	}

	items := s.store.List(ledger.SortKey(sortKey), order == "desc", filter)
	now := time.Now()
	response := make([]domain.ItemResponse, 0, len(items))
	for _, it := range items {
		response = append(response, toItemResponse(it, now))
	}
	return response
}

func (s *trackerService) ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest) (domain.ScanReceiptResponse, error) {
	groupID := req.ScanGroupID
	if groupID == "" {
		groupID = uuid.NewString()
	}

	classified, err := s.scanner.Classify(ctx, scanner.ClassifyRequest{
		Image:       req.Image,
		Timezone:    req.Timezone,
		PartialScan: req.PartialScan,
		ScanGroupID: groupID,
	})
	if err != nil {
		// The store stays untouched on classifier failure; no partial
		// ingestion.
		log.Errorf("classifier call failed: %v", err)
		return domain.ScanReceiptResponse{}, domain.ErrClassifierUnavailable
	}

	items, dropped := ingest.MapItems(classified)
	if dropped > 0 {
		log.Warnf("dropped %d malformed classifier items", dropped)
	}
	s.store.Add(items...)

	now := time.Now()
	response := domain.ScanReceiptResponse{
		ScanGroupID:  groupID,
		DroppedItems: dropped,
		Items:        make([]domain.ItemResponse, 0, len(items)),
	}
	for _, it := range items {
		response.Items = append(response.Items, toItemResponse(it, now))
	}
	return response, nil
}

func (s *trackerService) GetWeeklyReport(weeks int) domain.WeeklyReportResponse {
	if weeks < 1 {
		weeks = 1
	}
	return domain.WeeklyReportResponse{
		Weeks:   weeks,
		Buckets: report.WeeklyBuckets(s.store.Items(), weeks, time.Now()),
	}
}

func (s *trackerService) GetCurrentWeek() entities.WeekBucket {
	return report.CurrentWeekBucket(s.store.Items(), time.Now())
}

func (s *trackerService) GetDashboard() report.DashboardStats {
	return report.ComputeDashboardStats(s.store.Items(), time.Now())
}

func toItemResponse(it entities.Item, now time.Time) domain.ItemResponse {
	res := domain.ItemResponse{
		ID:              it.ID.String(),
		Name:            it.Name,
		DisplayName:     it.DisplayName(),
		Quantity:        it.Quantity,
		PurchasedAt:     it.PurchasedAt,
		DefaultStorage:  it.DefaultStorage,
		SelectedStorage: it.SelectedStorage,
		ExpiryByStorage: it.ExpiryByStorage,
		OverrideExpiry:  it.OverrideExpiry,
		Urgency:         string(expiry.Classify(it, now)),
		IsUsed:          it.IsUsed,
		UsedAt:          it.UsedAt,
		TotalCost:       it.EffectiveTotalCost(),
	}
	if t, ok := expiry.EffectiveExpiry(it); ok {
		res.EffectiveExpiry = &t
	}
	return res
}

func toUndoResponse(token ledger.UndoToken) domain.UndoResponse {
	return domain.UndoResponse{
		Kind:      string(token.Kind),
		Count:     token.Count,
		ExpiresAt: token.ExpiresAt,
	}
}
