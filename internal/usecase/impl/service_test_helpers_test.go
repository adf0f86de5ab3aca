package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"drugweb/internal/domain/entity"
	"drugweb/internal/domain/repository"

	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- In-memory repositories ---

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user

	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) NextCustomerID(_ context.Context) (string, error) {
	max := 0
	for id := range r.users {
		if strings.HasPrefix(id, "CM") {
			var n int
			if _, err := fmt.Sscanf(id[2:], "%d", &n); err == nil && n > max {
				max = n
			}
		}
	}

	return fmt.Sprintf("CM%03d", max+1), nil
}

func (r *memUserRepo) ListDeliveryStaff(_ context.Context) ([]*entity.User, error) {
	var staff []*entity.User
	for _, user := range r.users {
		if user.DeliveryProfile != nil {
			staff = append(staff, user)
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })

	return staff, nil
}

type memMedicineRepo struct {
	medicines map[string]*entity.Medicine
}

func newMemMedicineRepo(medicines ...*entity.Medicine) *memMedicineRepo {
	repo := &memMedicineRepo{medicines: make(map[string]*entity.Medicine)}
	for _, m := range medicines {
		repo.medicines[m.Code] = m
	}

	return repo
}

func (r *memMedicineRepo) FindByCode(_ context.Context, code string) (*entity.Medicine, error) {
	medicine, ok := r.medicines[code]
	if !ok {
		return nil, repository.ErrMedicineNotFound
	}

	return medicine, nil
}

func (r *memMedicineRepo) List(_ context.Context, search string, sortBy repository.MedicineSort) ([]*entity.Medicine, error) {
	var result []*entity.Medicine
	needle := strings.ToLower(search)
	for _, m := range r.medicines {
		if search == "" ||
			strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.GenericName), needle) ||
			strings.Contains(strings.ToLower(m.Category), needle) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		switch sortBy {
		case repository.SortByPrice:
			return result[i].Price.LessThan(result[j].Price)
		case repository.SortByCategory:
			return result[i].Category < result[j].Category
		default:
			return result[i].Name < result[j].Name
		}
	})

	return result, nil
}

type memCartRepo struct {
	lines  map[int64]*entity.CartItem
	nextID int64
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{lines: make(map[int64]*entity.CartItem), nextID: 1}
}

func (r *memCartRepo) FindLine(_ context.Context, customerID, medicineCode string) (*entity.CartItem, error) {
	for _, line := range r.lines {
		if line.CustomerID == customerID && line.MedicineCode == medicineCode {
			copied := *line

			return &copied, nil
		}
	}

	return nil, repository.ErrCartItemNotFound
}

func (r *memCartRepo) FindLineByID(_ context.Context, customerID string, cartID int64) (*entity.CartItem, error) {
	line, ok := r.lines[cartID]
	if !ok || line.CustomerID != customerID {
		return nil, repository.ErrCartItemNotFound
	}
	copied := *line

	return &copied, nil
}

func (r *memCartRepo) Create(_ context.Context, item *entity.CartItem) error {
	item.CartID = r.nextID
	item.AddedAt = time.Now()
	r.nextID++
	copied := *item
	r.lines[item.CartID] = &copied

	return nil
}

func (r *memCartRepo) UpdateQuantity(_ context.Context, customerID string, cartID int64, quantity int, total decimal.Decimal) error {
	line, ok := r.lines[cartID]
	if !ok || line.CustomerID != customerID {
		return repository.ErrCartItemNotFound
	}
	line.Quantity = quantity
	line.TotalPrice = total

	return nil
}

func (r *memCartRepo) Delete(_ context.Context, customerID string, cartID int64) error {
	if line, ok := r.lines[cartID]; ok && line.CustomerID == customerID {
		delete(r.lines, cartID)
	}

	return nil
}

func (r *memCartRepo) listFor(customerID string) []*entity.CartItem {
	var items []*entity.CartItem
	for _, line := range r.lines {
		if line.CustomerID == customerID {
			copied := *line
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CartID < items[j].CartID })

	return items
}

func (r *memCartRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.CartItem, error) {
	return r.listFor(customerID), nil
}

func (r *memCartRepo) ListForUpdate(_ context.Context, customerID string) ([]*entity.CartItem, error) {
	return r.listFor(customerID), nil
}

func (r *memCartRepo) TotalValue(_ context.Context, customerID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range r.lines {
		if line.CustomerID == customerID {
			total = total.Add(line.TotalPrice)
		}
	}

	return total, nil
}

func (r *memCartRepo) Clear(_ context.Context, customerID string) error {
	for id, line := range r.lines {
		if line.CustomerID == customerID {
			delete(r.lines, id)
		}
	}

	return nil
}

type memPaymentRepo struct {
	payments map[string]*entity.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (r *memPaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	payment.CreatedAt = time.Now()
	copied := *payment
	r.payments[payment.PaymentID] = &copied

	return nil
}

func (r *memPaymentRepo) Exists(_ context.Context, paymentID string) (bool, error) {
	_, ok := r.payments[paymentID]

	return ok, nil
}

func (r *memPaymentRepo) FindByID(_ context.Context, paymentID string) (*entity.Payment, error) {
	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	copied := *payment

	return &copied, nil
}

func (r *memPaymentRepo) FindAssigned(_ context.Context, paymentID, staffID string) (*entity.Payment, error) {
	payment, ok := r.payments[paymentID]
	if !ok || payment.DeliveryStaffID == nil || *payment.DeliveryStaffID != staffID {
		return nil, repository.ErrPaymentNotFound
	}
	copied := *payment

	return &copied, nil
}

func (r *memPaymentRepo) SetAssignee(_ context.Context, paymentID, staffID string) error {
	payment, ok := r.payments[paymentID]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	payment.DeliveryStaffID = &staffID

	return nil
}

func (r *memPaymentRepo) Accept(_ context.Context, paymentID string, deliveryDate time.Time) error {
	payment, ok := r.payments[paymentID]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	payment.Status = entity.StatusAcceptedForDelivery
	payment.DeliveryDate = &deliveryDate

	return nil
}

func (r *memPaymentRepo) Decline(_ context.Context, paymentID string) error {
	payment, ok := r.payments[paymentID]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	payment.Status = entity.StatusPendingAssignment
	payment.DeliveryStaffID = nil

	return nil
}

func (r *memPaymentRepo) MarkDelivered(_ context.Context, paymentID string) error {
	payment, ok := r.payments[paymentID]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	payment.Status = entity.StatusDelivered

	return nil
}

func (r *memPaymentRepo) ListAll(_ context.Context) ([]*entity.PaymentSummary, error) {
	var summaries []*entity.PaymentSummary
	for _, payment := range r.payments {
		summaries = append(summaries, &entity.PaymentSummary{Payment: *payment})
	}

	return summaries, nil
}

func (r *memPaymentRepo) ListByStaff(_ context.Context, staffID string) ([]*entity.PaymentSummary, error) {
	var summaries []*entity.PaymentSummary
	for _, payment := range r.payments {
		if payment.DeliveryStaffID != nil && *payment.DeliveryStaffID == staffID {
			summaries = append(summaries, &entity.PaymentSummary{Payment: *payment})
		}
	}

	return summaries, nil
}

func (r *memPaymentRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for _, payment := range r.payments {
		if payment.CustomerID == customerID {
			copied := *payment
			payments = append(payments, &copied)
		}
	}

	return payments, nil
}

type memPointsRepo struct {
	balances map[string]int
	history  []*entity.PointsEntry
}

func newMemPointsRepo() *memPointsRepo {
	return &memPointsRepo{balances: make(map[string]int)}
}

func (r *memPointsRepo) IncrementBalance(_ context.Context, customerID string, delta int) error {
	if _, ok := r.balances[customerID]; !ok {
		return repository.ErrUserNotFound
	}
	r.balances[customerID] += delta

	return nil
}

func (r *memPointsRepo) Balance(_ context.Context, customerID string) (int, error) {
	balance, ok := r.balances[customerID]
	if !ok {
		return 0, repository.ErrUserNotFound
	}

	return balance, nil
}

func (r *memPointsRepo) AppendHistory(_ context.Context, entry *entity.PointsEntry) error {
	entry.HistoryID = int64(len(r.history) + 1)
	entry.CreatedAt = time.Now()
	copied := *entry
	r.history = append(r.history, &copied)

	return nil
}

func (r *memPointsRepo) ListHistory(_ context.Context, customerID string) ([]*entity.PointsEntry, error) {
	var entries []*entity.PointsEntry
	for _, entry := range r.history {
		if entry.CustomerID == customerID {
			copied := *entry
			entries = append(entries, &copied)
		}
	}

	return entries, nil
}

type memNotificationRepo struct {
	notifications []*entity.Notification
	appendErr     error // scripted failure for transaction rollback tests
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{}
}

func (r *memNotificationRepo) Append(_ context.Context, notification *entity.Notification) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	notification.NotificationID = int64(len(r.notifications) + 1)
	notification.CreatedAt = time.Now()
	copied := *notification
	r.notifications = append(r.notifications, &copied)

	return nil
}

func (r *memNotificationRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Notification, error) {
	var result []*entity.Notification
	for _, n := range r.notifications {
		if n.CustomerID == customerID {
			copied := *n
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *memNotificationRepo) ListUnread(_ context.Context, customerID string) ([]*entity.Notification, error) {
	var result []*entity.Notification
	for _, n := range r.notifications {
		if n.CustomerID == customerID && !n.IsRead {
			copied := *n
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *memNotificationRepo) MarkAllRead(_ context.Context, customerID string) error {
	for _, n := range r.notifications {
		if n.CustomerID == customerID {
			n.IsRead = true
		}
	}

	return nil
}

type memRequestRepo struct {
	requests []*entity.CustomerRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{}
}

func (r *memRequestRepo) Create(_ context.Context, request *entity.CustomerRequest) error {
	request.RequestID = int64(len(r.requests) + 1)
	copied := *request
	r.requests = append(r.requests, &copied)

	return nil
}

func (r *memRequestRepo) FindByCustomerAndName(_ context.Context, customerID, medicineName string) (*entity.CustomerRequest, error) {
	for _, request := range r.requests {
		if request.CustomerID == customerID && request.MedicineName == medicineName {
			copied := *request

			return &copied, nil
		}
	}

	return nil, repository.ErrRequestNotFound
}

func (r *memRequestRepo) UpdateStatus(_ context.Context, customerID, medicineName string, status entity.RequestStatus) error {
	updated := false
	for _, request := range r.requests {
		if request.CustomerID == customerID && request.MedicineName == medicineName {
			request.Status = status
			updated = true
		}
	}
	if !updated {
		return repository.ErrRequestNotFound
	}

	return nil
}

func (r *memRequestRepo) ListAll(_ context.Context) ([]*entity.CustomerRequest, error) {
	result := make([]*entity.CustomerRequest, 0, len(r.requests))
	for _, request := range r.requests {
		copied := *request
		result = append(result, &copied)
	}

	return result, nil
}

func (r *memRequestRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.CustomerRequest, error) {
	var result []*entity.CustomerRequest
	for _, request := range r.requests {
		if request.CustomerID == customerID {
			copied := *request
			result = append(result, &copied)
		}
	}

	return result, nil
}

type memReviewRepo struct {
	reviews []*entity.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{}
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.ReviewID = int64(len(r.reviews) + 1)
	copied := *review
	r.reviews = append(r.reviews, &copied)

	return nil
}

func (r *memReviewRepo) ListAll(_ context.Context) ([]*entity.Review, error) {
	result := make([]*entity.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		copied := *review
		result = append(result, &copied)
	}

	return result, nil
}

// --- Transaction plumbing ---

// memFactory hands back the shared in-memory repositories; tests assert on
// their state after the "transaction" finishes.
type memFactory struct {
	cartRepo         *memCartRepo
	paymentRepo      *memPaymentRepo
	pointsRepo       *memPointsRepo
	notificationRepo *memNotificationRepo
	userRepo         *memUserRepo
}

func (f *memFactory) CartRepo() repository.CartRepository                 { return f.cartRepo }
func (f *memFactory) PaymentRepo() repository.PaymentRepository           { return f.paymentRepo }
func (f *memFactory) PointsRepo() repository.PointsRepository             { return f.pointsRepo }
func (f *memFactory) NotificationRepo() repository.NotificationRepository { return f.notificationRepo }
func (f *memFactory) UserRepo() repository.UserRepository                 { return f.userRepo }

// memState is a deep copy of every repository the factory hands out, taken
// before a transactional unit runs.
type memState struct {
	cartLines     map[int64]*entity.CartItem
	cartNextID    int64
	payments      map[string]*entity.Payment
	balances      map[string]int
	history       []*entity.PointsEntry
	notifications []*entity.Notification
	users         map[string]*entity.User
}

func (f *memFactory) snapshot() *memState {
	state := &memState{
		cartLines:  make(map[int64]*entity.CartItem, len(f.cartRepo.lines)),
		cartNextID: f.cartRepo.nextID,
		payments:   make(map[string]*entity.Payment, len(f.paymentRepo.payments)),
		balances:   make(map[string]int, len(f.pointsRepo.balances)),
		users:      make(map[string]*entity.User, len(f.userRepo.users)),
	}
	for id, line := range f.cartRepo.lines {
		copied := *line
		state.cartLines[id] = &copied
	}
	for id, payment := range f.paymentRepo.payments {
		copied := *payment
		state.payments[id] = &copied
	}
	for id, balance := range f.pointsRepo.balances {
		state.balances[id] = balance
	}
	for _, entry := range f.pointsRepo.history {
		copied := *entry
		state.history = append(state.history, &copied)
	}
	for _, notification := range f.notificationRepo.notifications {
		copied := *notification
		state.notifications = append(state.notifications, &copied)
	}
	for id, user := range f.userRepo.users {
		state.users[id] = user
	}

	return state
}

func (f *memFactory) restore(state *memState) {
	f.cartRepo.lines = state.cartLines
	f.cartRepo.nextID = state.cartNextID
	f.paymentRepo.payments = state.payments
	f.pointsRepo.balances = state.balances
	f.pointsRepo.history = state.history
	f.notificationRepo.notifications = state.notifications
	f.userRepo.users = state.users
}

// memTxManager mimics transactional semantics: the repositories' state is
// snapshotted before the unit runs and restored when it fails or panics, so
// tests can observe that a mid-unit failure leaves no partial writes.
type memTxManager struct {
	factory *memFactory
}

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) (err error) {
	state := tm.factory.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.factory.restore(state)
			panic(r)
		}
		if err != nil {
			tm.factory.restore(state)
		}
	}()

	return fn(tm.factory)
}

// --- Scripted collaborators ---

// scriptedIDGenerator returns a fixed sequence of IDs and records the digit
// widths it was asked for.
type scriptedIDGenerator struct {
	ids    []string
	calls  int
	widths []int
}

func (g *scriptedIDGenerator) Generate(digits int) string {
	g.widths = append(g.widths, digits)
	id := g.ids[g.calls%len(g.ids)]
	g.calls++

	return id
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }
func (plainHasher) Check(password, hash string) bool     { return "hash:"+password == hash }
