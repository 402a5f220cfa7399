package service

import (
	"context"
	"strings"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// Hand-written in-memory mocks for the repository interfaces.

// =============================================================================
// Users
// =============================================================================

type mockUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	err    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetByIDNumber(ctx context.Context, idNumber string) (*domain.User, error) {
	for _, user := range m.users {
		if user.IDNumber == idNumber {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	result := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		result = append(result, user)
	}
	return result, nil
}

// =============================================================================
// Employees
// =============================================================================

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
	err       error
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[int64]*domain.Employee), nextID: 1}
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	if m.err != nil {
		return m.err
	}
	employee.ID = m.nextID
	m.nextID++
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	if employee, ok := m.employees[id]; ok {
		return employee, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetByLoginName(ctx context.Context, loginName string) (*domain.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, employee := range m.employees {
		if employee.LoginName == loginName {
			return employee, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	for _, employee := range m.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	if _, ok := m.employees[employee.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) ListActive(ctx context.Context) ([]*domain.Employee, error) {
	var result []*domain.Employee
	for _, employee := range m.employees {
		if employee.Active {
			result = append(result, employee)
		}
	}
	return result, nil
}

// =============================================================================
// Items
// =============================================================================

type mockItemRepo struct {
	items  map[int64]*domain.Item
	nextID int64
	err    error
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[int64]*domain.Item), nextID: 1}
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	if m.err != nil {
		return m.err
	}
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	if _, ok := m.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) List(ctx context.Context) ([]*domain.Item, error) {
	result := make([]*domain.Item, 0, len(m.items))
	for _, item := range m.items {
		result = append(result, item)
	}
	return result, nil
}

func (m *mockItemRepo) FindByTitle(ctx context.Context, title string) ([]*domain.Item, error) {
	var result []*domain.Item
	for _, item := range m.items {
		if strings.Contains(item.Title, title) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockItemRepo) FindByAuthor(ctx context.Context, author string) ([]*domain.Item, error) {
	var result []*domain.Item
	for _, item := range m.items {
		if strings.Contains(item.Author, author) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockItemRepo) ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error) {
	var result []*domain.Item
	for _, item := range m.items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockItemRepo) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]*domain.Item, error) {
	var result []*domain.Item
	for _, item := range m.items {
		if item.Status == status {
			result = append(result, item)
		}
	}
	return result, nil
}

// =============================================================================
// Loans
// =============================================================================

type mockLoanRepo struct {
	loans  map[int64]*domain.Loan
	nextID int64
	err    error
}

func newMockLoanRepo() *mockLoanRepo {
	return &mockLoanRepo{loans: make(map[int64]*domain.Loan), nextID: 1}
}

func (m *mockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	if m.err != nil {
		return m.err
	}
	loan.ID = m.nextID
	m.nextID++
	m.loans[loan.ID] = loan
	return nil
}

func (m *mockLoanRepo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	if m.err != nil {
		return nil, m.err
	}
	if loan, ok := m.loans[id]; ok {
		return loan, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *mockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	if _, ok := m.loans[loan.ID]; !ok {
		return domain.ErrLoanNotFound
	}
	m.loans[loan.ID] = loan
	return nil
}

func (m *mockLoanRepo) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	var result []*domain.Loan
	for _, loan := range m.loans {
		if loan.Active {
			result = append(result, loan)
		}
	}
	return result, nil
}

func (m *mockLoanRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Loan, error) {
	var result []*domain.Loan
	for _, loan := range m.loans {
		if loan.UserID == userID {
			result = append(result, loan)
		}
	}
	return result, nil
}

func (m *mockLoanRepo) ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Loan, error) {
	var result []*domain.Loan
	for _, loan := range m.loans {
		if loan.UserID == userID && loan.Active {
			result = append(result, loan)
		}
	}
	return result, nil
}

func (m *mockLoanRepo) ListByItem(ctx context.Context, itemID int64) ([]*domain.Loan, error) {
	var result []*domain.Loan
	for _, loan := range m.loans {
		if loan.ItemID == itemID {
			result = append(result, loan)
		}
	}
	return result, nil
}

// =============================================================================
// Reservations
// =============================================================================

type mockReservationRepo struct {
	reservations map[int64]*domain.Reservation
	nextID       int64
	err          error
}

func newMockReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{reservations: make(map[int64]*domain.Reservation), nextID: 1}
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	if m.err != nil {
		return m.err
	}
	reservation.ID = m.nextID
	m.nextID++
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	if reservation, ok := m.reservations[id]; ok {
		return reservation, nil
	}
	return nil, domain.ErrReservationNotFound
}

func (m *mockReservationRepo) Update(ctx context.Context, reservation *domain.Reservation) error {
	if _, ok := m.reservations[reservation.ID]; !ok {
		return domain.ErrReservationNotFound
	}
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *mockReservationRepo) ListActive(ctx context.Context) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, reservation := range m.reservations {
		if reservation.Active {
			result = append(result, reservation)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, reservation := range m.reservations {
		if reservation.UserID == userID {
			result = append(result, reservation)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, reservation := range m.reservations {
		if reservation.UserID == userID && reservation.Active {
			result = append(result, reservation)
		}
	}
	return result, nil
}

// =============================================================================
// Fines
// =============================================================================

type mockFineRepo struct {
	fines  map[int64]*domain.Fine
	nextID int64
	err    error
}

func newMockFineRepo() *mockFineRepo {
	return &mockFineRepo{fines: make(map[int64]*domain.Fine), nextID: 1}
}

func (m *mockFineRepo) Create(ctx context.Context, fine *domain.Fine) error {
	if m.err != nil {
		return m.err
	}
	fine.ID = m.nextID
	m.nextID++
	m.fines[fine.ID] = fine
	return nil
}

func (m *mockFineRepo) GetByID(ctx context.Context, id int64) (*domain.Fine, error) {
	if m.err != nil {
		return nil, m.err
	}
	if fine, ok := m.fines[id]; ok {
		return fine, nil
	}
	return nil, domain.ErrFineNotFound
}

func (m *mockFineRepo) Update(ctx context.Context, fine *domain.Fine) error {
	if _, ok := m.fines[fine.ID]; !ok {
		return domain.ErrFineNotFound
	}
	m.fines[fine.ID] = fine
	return nil
}

func (m *mockFineRepo) ListUnpaid(ctx context.Context) ([]*domain.Fine, error) {
	var result []*domain.Fine
	for _, fine := range m.fines {
		if !fine.Paid {
			result = append(result, fine)
		}
	}
	return result, nil
}

func (m *mockFineRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Fine, error) {
	var result []*domain.Fine
	for _, fine := range m.fines {
		if fine.UserID == userID {
			result = append(result, fine)
		}
	}
	return result, nil
}

func (m *mockFineRepo) ListByLoan(ctx context.Context, loanID int64) ([]*domain.Fine, error) {
	var result []*domain.Fine
	for _, fine := range m.fines {
		if fine.LoanID == loanID {
			result = append(result, fine)
		}
	}
	return result, nil
}

// =============================================================================
// Unit of work
// =============================================================================

// mockUnitOfWork runs the callback against the shared mock repositories
// without any transactional behavior.
type mockUnitOfWork struct {
	repos repository.Set
}

func (m *mockUnitOfWork) Do(ctx context.Context, fn func(repos repository.Set) error) error {
	return fn(m.repos)
}

// fixture bundles the mocks every service test starts from.
type fixture struct {
	users        *mockUserRepo
	employees    *mockEmployeeRepo
	items        *mockItemRepo
	loans        *mockLoanRepo
	reservations *mockReservationRepo
	fines        *mockFineRepo
	uow          *mockUnitOfWork
}

func newFixture() *fixture {
	f := &fixture{
		users:        newMockUserRepo(),
		employees:    newMockEmployeeRepo(),
		items:        newMockItemRepo(),
		loans:        newMockLoanRepo(),
		reservations: newMockReservationRepo(),
		fines:        newMockFineRepo(),
	}
	f.uow = &mockUnitOfWork{repos: repository.Set{
		Users:        f.users,
		Employees:    f.employees,
		Items:        f.items,
		Loans:        f.loans,
		Reservations: f.reservations,
		Fines:        f.fines,
	}}
	return f
}
