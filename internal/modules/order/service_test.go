package order

import (
	"context"
	"errors"
	"testing"

	"dine-and-deliver/internal/models"
)

// ----------------------------------------------------------------------------
// fakeRepo: in-memory order store recording every write
// ----------------------------------------------------------------------------
type fakeRepo struct {
	orders  map[string]*models.Order
	emails  map[string]string
	updates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		orders: make(map[string]*models.Order),
		emails: make(map[string]string),
	}
}

func (f *fakeRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	cp := *order
	f.orders[order.ID] = &cp
	return &cp, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeRepo) FindByIDForCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok || o.CustomerID != customerID {
		return nil, models.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeRepo) FindByIDForVendor(ctx context.Context, orderID, vendorID string) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok || o.VendorID != vendorID {
		return nil, models.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeRepo) Update(ctx context.Context, order *models.Order) (*models.Order, error) {
	if _, ok := f.orders[order.ID]; !ok {
		return nil, models.ErrNotFound
	}
	cp := *order
	f.orders[order.ID] = &cp
	f.updates++
	return &cp, nil
}

func (f *fakeRepo) ListByCustomer(ctx context.Context, customerID string, activeOnly bool) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.CustomerID != customerID {
			continue
		}
		if activeOnly && (o.CurrentStatus.Terminal() || !o.IsActive) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRepo) ListByVendor(ctx context.Context, vendorID string, activeOnly bool) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.VendorID != vendorID {
			continue
		}
		if activeOnly && (o.CurrentStatus.Terminal() || !o.IsActive) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRepo) CustomerEmail(ctx context.Context, orderID string) (string, error) {
	email, ok := f.emails[orderID]
	if !ok {
		return "", models.ErrNotFound
	}
	return email, nil
}

// ----------------------------------------------------------------------------
// fakeVendors: vendor directory recording link writes and rating folds
// ----------------------------------------------------------------------------
type fakeVendors struct {
	vendors  map[string]*models.Vendor
	appended map[string][]string
	ratings  map[string][]float64
	linkErr  error
}

func newFakeVendors() *fakeVendors {
	return &fakeVendors{
		vendors:  make(map[string]*models.Vendor),
		appended: make(map[string][]string),
		ratings:  make(map[string][]float64),
	}
}

func (f *fakeVendors) FindByID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	v, ok := f.vendors[vendorID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVendors) FindByUserID(ctx context.Context, userID string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.UserID == userID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeVendors) AppendOrder(ctx context.Context, vendorID, orderID string) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.appended[vendorID] = append(f.appended[vendorID], orderID)
	return nil
}

func (f *fakeVendors) RecordRating(ctx context.Context, vendorID string, score float64) error {
	f.ratings[vendorID] = append(f.ratings[vendorID], score)
	return nil
}

// ----------------------------------------------------------------------------
// fakeCatalog: dish lookup scoped by vendor plus food-rating folds
// ----------------------------------------------------------------------------
type fakeCatalog struct {
	dishes  map[string]*models.Dish
	ratings map[string][]float64
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		dishes:  make(map[string]*models.Dish),
		ratings: make(map[string][]float64),
	}
}

func (f *fakeCatalog) FindForVendor(ctx context.Context, vendorID string, dishIDs []string) ([]*models.Dish, error) {
	seen := make(map[string]struct{})
	var out []*models.Dish
	for _, id := range dishIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		d, ok := f.dishes[id]
		if !ok || d.VendorID != vendorID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCatalog) RecordFoodRating(ctx context.Context, dishID string, score float64) error {
	f.ratings[dishID] = append(f.ratings[dishID], score)
	return nil
}

// ----------------------------------------------------------------------------
// Fixtures
// ----------------------------------------------------------------------------

const (
	testCustomerID = "customer-1"
	testVendorID   = "vendor-1"
	testVendorUser = "vendor-user-1"
)

func newTestService() (*Service, *fakeRepo, *fakeVendors, *fakeCatalog) {
	repo := newFakeRepo()
	vendors := newFakeVendors()
	catalog := newFakeCatalog()

	vendors.vendors[testVendorID] = &models.Vendor{
		ID:       testVendorID,
		UserID:   testVendorUser,
		ShopName: "Hazratganj Greens",
		IsActive: true,
		Location: &models.LocationSnapshot{
			Address:   "Hazratganj, Lucknow",
			Latitude:  26.8467,
			Longitude: 80.9462,
		},
	}
	catalog.dishes["dish-1"] = &models.Dish{ID: "dish-1", VendorID: testVendorID, Name: "Aloo Paratha", ImageURL: "https://img/aloo.jpg", Price: 50}
	catalog.dishes["dish-2"] = &models.Dish{ID: "dish-2", VendorID: testVendorID, Name: "Fruit Bowl", Price: 75}
	catalog.dishes["dish-other"] = &models.Dish{ID: "dish-other", VendorID: "vendor-2", Name: "Elsewhere", Price: 10}

	return NewService(repo, vendors, catalog, nil), repo, vendors, catalog
}

func validCreateRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		VendorID: testVendorID,
		CartItems: []models.CartLineRequest{
			{DishID: "dish-1", UnitPrice: 50, Quantity: 2},
			{DishID: "dish-2", UnitPrice: 75, Quantity: 2},
		},
		DropLocation: models.LocationSnapshot{
			Address:   "Gomti Nagar, Lucknow",
			Latitude:  26.8512,
			Longitude: 81.0096,
		},
	}
}

// ----------------------------------------------------------------------------
// Create
// ----------------------------------------------------------------------------

func TestCreateOrder(t *testing.T) {
	svc, repo, vendors, _ := newTestService()

	order, err := svc.Create(context.Background(), testCustomerID, validCreateRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// 2x50 + 2x75 = 250; GST ceil(250*0.05) = 13.
	if order.Bill.CartTotal != 250 {
		t.Errorf("cart total = %v, want 250", order.Bill.CartTotal)
	}
	if order.Bill.TaxAmount != 13 {
		t.Errorf("tax = %v, want 13", order.Bill.TaxAmount)
	}
	if order.Bill.GrandTotal != 263 {
		t.Errorf("grand total = %v, want 263", order.Bill.GrandTotal)
	}

	if order.CurrentStatus != models.StatusPlaced {
		t.Errorf("status = %s, want Placed", order.CurrentStatus)
	}
	if len(order.StatusHistory) != 1 || order.StatusHistory[0].Status != models.StatusPlaced {
		t.Errorf("history = %+v, want single Placed entry", order.StatusHistory)
	}
	if order.DeliveryDetails.DegradedEstimate {
		t.Error("estimate flagged degraded for a vendor with a registered location")
	}
	if order.DeliveryDetails.DistanceKm <= 0 {
		t.Errorf("distance = %v, want > 0", order.DeliveryDetails.DistanceKm)
	}
	if order.DeliveryDetails.EstimatedTimeMin <= 0 {
		t.Errorf("eta = %v, want > 0", order.DeliveryDetails.EstimatedTimeMin)
	}

	// Snapshot fills name/image from the menu when the client omits them.
	if order.CartItems[0].Name != "Aloo Paratha" {
		t.Errorf("cart item name = %q, want filled from menu", order.CartItems[0].Name)
	}
	if order.CartItems[0].ImageURL != "https://img/aloo.jpg" {
		t.Errorf("cart item image = %q, want filled from menu", order.CartItems[0].ImageURL)
	}

	if _, ok := repo.orders[order.ID]; !ok {
		t.Error("order not persisted")
	}
	if got := vendors.appended[testVendorID]; len(got) != 1 || got[0] != order.ID {
		t.Errorf("vendor link = %v, want [%s]", got, order.ID)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	svc, repo, _, _ := newTestService()

	req := validCreateRequest()
	req.CartItems = nil
	if _, err := svc.Create(context.Background(), testCustomerID, req); !errors.Is(err, models.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if len(repo.orders) != 0 {
		t.Error("order persisted despite empty cart")
	}
}

func TestCreateOrderInvalidDrop(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validCreateRequest()
	req.DropLocation.Latitude = 91
	if _, err := svc.Create(context.Background(), testCustomerID, req); !errors.Is(err, models.ErrInvalidLocation) {
		t.Fatalf("err = %v, want ErrInvalidLocation", err)
	}
}

func TestCreateOrderUnknownVendor(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validCreateRequest()
	req.VendorID = "no-such-vendor"
	if _, err := svc.Create(context.Background(), testCustomerID, req); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateOrderCrossVendorDish(t *testing.T) {
	svc, repo, vendors, _ := newTestService()

	req := validCreateRequest()
	req.CartItems = append(req.CartItems, models.CartLineRequest{DishID: "dish-other", UnitPrice: 10, Quantity: 1})
	if _, err := svc.Create(context.Background(), testCustomerID, req); !errors.Is(err, models.ErrDishMismatch) {
		t.Fatalf("err = %v, want ErrDishMismatch", err)
	}
	if len(repo.orders) != 0 {
		t.Error("order persisted despite dish mismatch")
	}
	if len(vendors.appended[testVendorID]) != 0 {
		t.Error("vendor link written despite dish mismatch")
	}
}

func TestCreateOrderBadCartLine(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validCreateRequest()
	req.CartItems[0].UnitPrice = -1
	if _, err := svc.Create(context.Background(), testCustomerID, req); !errors.Is(err, models.ErrInvalidCartLine) {
		t.Fatalf("negative price: err = %v, want ErrInvalidCartLine", err)
	}

	req = validCreateRequest()
	req.CartItems[0].Quantity = 0
	if _, err := svc.Create(context.Background(), testCustomerID, req); !errors.Is(err, models.ErrInvalidCartLine) {
		t.Fatalf("zero quantity: err = %v, want ErrInvalidCartLine", err)
	}
}

func TestCreateOrderDegradedFallback(t *testing.T) {
	svc, _, vendors, _ := newTestService()
	vendors.vendors[testVendorID].Location = nil

	order, err := svc.Create(context.Background(), testCustomerID, validCreateRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !order.DeliveryDetails.DegradedEstimate {
		t.Error("degraded flag not set for vendor without a location")
	}
	if order.DeliveryDetails.DistanceKm != 0 {
		t.Errorf("distance = %v, want 0 under fallback pickup", order.DeliveryDetails.DistanceKm)
	}
	if order.DeliveryDetails.EstimatedTimeMin != 0 {
		t.Errorf("eta = %v, want 0 under fallback pickup", order.DeliveryDetails.EstimatedTimeMin)
	}
	if order.DeliveryDetails.Pickup.Address != "Default Vendor Location" {
		t.Errorf("pickup address = %q", order.DeliveryDetails.Pickup.Address)
	}
}

func TestCreateOrderSurvivesLinkFailure(t *testing.T) {
	svc, repo, vendors, _ := newTestService()
	vendors.linkErr = errors.New("boom")

	order, err := svc.Create(context.Background(), testCustomerID, validCreateRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, ok := repo.orders[order.ID]; !ok {
		t.Error("order lost when the vendor link write failed")
	}
}

// ----------------------------------------------------------------------------
// Status lifecycle
// ----------------------------------------------------------------------------

func mustCreate(t *testing.T, svc *Service) *models.Order {
	t.Helper()
	order, err := svc.Create(context.Background(), testCustomerID, validCreateRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return order
}

func TestUpdateStatusForward(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Confirmed")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.CurrentStatus != models.StatusConfirmed {
		t.Errorf("status = %s, want Confirmed", updated.CurrentStatus)
	}
	if len(updated.StatusHistory) != 2 {
		t.Errorf("history length = %d, want 2", len(updated.StatusHistory))
	}

	// Skipping intermediate states is allowed; only backward moves are not.
	updated, err = svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "OutForDelivery")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.CurrentStatus != models.StatusOutForDelivery {
		t.Errorf("status = %s, want OutForDelivery", updated.CurrentStatus)
	}
}

func TestUpdateStatusBackwardRejected(t *testing.T) {
	svc, repo, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Preparing"); err != nil {
		t.Fatalf("forward move failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Confirmed"); !errors.Is(err, models.ErrStatusOrder) {
		t.Fatalf("err = %v, want ErrStatusOrder", err)
	}
	if got := repo.orders[order.ID].CurrentStatus; got != models.StatusPreparing {
		t.Errorf("status mutated to %s by a rejected transition", got)
	}
}

func TestUpdateStatusUnknownState(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Teleported"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusCancelViaStatusRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Canceled"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusTerminalFrozen(t *testing.T) {
	svc, repo, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Delivered"); err != nil {
		t.Fatalf("delivery failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "OutForDelivery"); !errors.Is(err, models.ErrOrderClosed) {
		t.Fatalf("err = %v, want ErrOrderClosed", err)
	}

	stored := repo.orders[order.ID]
	if stored.CurrentStatus != models.StatusDelivered {
		t.Errorf("status mutated after terminal state: %s", stored.CurrentStatus)
	}
	if n := len(stored.StatusHistory); n != 2 {
		t.Errorf("history length = %d, want 2", n)
	}
}

func TestUpdateStatusNoDuplicateHistory(t *testing.T) {
	svc, repo, _, _ := newTestService()
	order := mustCreate(t, svc)

	for i := 0; i < 3; i++ {
		if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Confirmed"); err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
	}

	history := repo.orders[order.ID].StatusHistory
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (Placed, Confirmed)", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Status == history[i-1].Status {
			t.Errorf("consecutive duplicate entry %s at %d", history[i].Status, i)
		}
	}
}

func TestUpdateStatusWrongVendor(t *testing.T) {
	svc, _, vendors, _ := newTestService()
	order := mustCreate(t, svc)

	vendors.vendors["vendor-2"] = &models.Vendor{ID: "vendor-2", UserID: "vendor-user-2"}
	if _, err := svc.UpdateStatus(context.Background(), order.ID, "vendor-user-2", "Confirmed"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for another vendor's order", err)
	}
}

// ----------------------------------------------------------------------------
// Cancellation
// ----------------------------------------------------------------------------

func TestCancelByCustomer(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	canceled, err := svc.CancelByCustomer(context.Background(), order.ID, testCustomerID, "changed my mind")
	if err != nil {
		t.Fatalf("CancelByCustomer returned error: %v", err)
	}
	if canceled.CurrentStatus != models.StatusCanceled {
		t.Errorf("status = %s, want Canceled", canceled.CurrentStatus)
	}
	cd := canceled.CancellationDetails
	if cd == nil {
		t.Fatal("cancellation details missing")
	}
	if cd.CanceledBy != testCustomerID || cd.ActorType != models.ActorCustomer || cd.Reason != "changed my mind" {
		t.Errorf("cancellation details = %+v", cd)
	}
}

func TestCancelByVendor(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	canceled, err := svc.CancelByVendor(context.Background(), order.ID, testVendorUser, "out of stock")
	if err != nil {
		t.Fatalf("CancelByVendor returned error: %v", err)
	}
	if canceled.CancellationDetails.ActorType != models.ActorRestaurantOwner {
		t.Errorf("actor = %s, want Restaurant_Owner", canceled.CancellationDetails.ActorType)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	svc, repo, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.CancelByCustomer(context.Background(), order.ID, testCustomerID, ""); !errors.Is(err, models.ErrCancelReasonRequired) {
		t.Fatalf("err = %v, want ErrCancelReasonRequired", err)
	}
	if got := repo.orders[order.ID].CurrentStatus; got != models.StatusPlaced {
		t.Errorf("status mutated to %s by a rejected cancel", got)
	}
}

func TestCancelTerminalOrder(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), order.ID, testVendorUser, "Delivered"); err != nil {
		t.Fatalf("delivery failed: %v", err)
	}
	if _, err := svc.CancelByCustomer(context.Background(), order.ID, testCustomerID, "too late"); !errors.Is(err, models.ErrOrderClosed) {
		t.Fatalf("err = %v, want ErrOrderClosed", err)
	}
}

// ----------------------------------------------------------------------------
// Rating
// ----------------------------------------------------------------------------

func TestRateOrder(t *testing.T) {
	svc, repo, vendors, catalog := newTestService()
	order := mustCreate(t, svc)

	rated, err := svc.Rate(context.Background(), order.ID, testCustomerID, models.RateOrderRequest{
		RestaurantRating: 4.5,
		FoodRating:       3,
		DeliveryRating:   5,
	})
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	if rated.RatingDetails == nil || rated.RatingDetails.Restaurant != 4.5 {
		t.Errorf("rating details = %+v", rated.RatingDetails)
	}
	if repo.orders[order.ID].RatingDetails == nil {
		t.Error("rating not persisted")
	}

	if got := vendors.ratings[testVendorID]; len(got) != 1 || got[0] != 4.5 {
		t.Errorf("vendor fold = %v, want [4.5]", got)
	}
	for _, dishID := range []string{"dish-1", "dish-2"} {
		if got := catalog.ratings[dishID]; len(got) != 1 || got[0] != 3 {
			t.Errorf("dish %s fold = %v, want [3]", dishID, got)
		}
	}
}

// Rating a non-delivered order is accepted; there is deliberately no
// status guard and clients depend on that.
func TestRateOrderBeforeDelivery(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	if order.CurrentStatus != models.StatusPlaced {
		t.Fatalf("precondition: status = %s", order.CurrentStatus)
	}
	if _, err := svc.Rate(context.Background(), order.ID, testCustomerID, models.RateOrderRequest{
		RestaurantRating: 2, FoodRating: 2, DeliveryRating: 2,
	}); err != nil {
		t.Fatalf("Rate on a Placed order returned error: %v", err)
	}
}

func TestRateOrderOutOfRange(t *testing.T) {
	svc, _, vendors, _ := newTestService()
	order := mustCreate(t, svc)

	for _, req := range []models.RateOrderRequest{
		{RestaurantRating: 5.1},
		{FoodRating: -0.5},
		{DeliveryRating: 6},
	} {
		if _, err := svc.Rate(context.Background(), order.ID, testCustomerID, req); !errors.Is(err, models.ErrInvalidRating) {
			t.Errorf("req %+v: err = %v, want ErrInvalidRating", req, err)
		}
	}
	if len(vendors.ratings[testVendorID]) != 0 {
		t.Error("vendor fold ran for a rejected rating")
	}
}

// ----------------------------------------------------------------------------
// Listings and tracking
// ----------------------------------------------------------------------------

func TestTrackScopedToCustomer(t *testing.T) {
	svc, _, _, _ := newTestService()
	order := mustCreate(t, svc)

	if _, err := svc.Track(context.Background(), order.ID, testCustomerID); err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	if _, err := svc.Track(context.Background(), order.ID, "customer-2"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for another customer", err)
	}
}

func TestListVendorOrdersActiveOnly(t *testing.T) {
	svc, _, _, _ := newTestService()
	open := mustCreate(t, svc)
	done := mustCreate(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), done.ID, testVendorUser, "Delivered"); err != nil {
		t.Fatalf("delivery failed: %v", err)
	}

	active, err := svc.ListVendorOrders(context.Background(), testVendorUser, true)
	if err != nil {
		t.Fatalf("ListVendorOrders returned error: %v", err)
	}
	if len(active) != 1 || active[0].ID != open.ID {
		t.Errorf("active orders = %v, want only the open order", ids(active))
	}

	all, err := svc.ListVendorOrders(context.Background(), testVendorUser, false)
	if err != nil {
		t.Fatalf("ListVendorOrders returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all orders = %v, want both", ids(all))
	}
}

func ids(orders []*models.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
