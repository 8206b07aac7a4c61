// Package memory provides in-memory repositories that mirror the constraint
// behaviour of the PostgreSQL ones. They back the handler and service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
)

// MemberRepository stores members in a map
type MemberRepository struct {
	mu      sync.Mutex
	nextID  int64
	members map[int64]*models.Member
	creates int
}

// NewMemberRepository creates an empty MemberRepository
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{members: map[int64]*models.Member{}}
}

func (r *MemberRepository) Create(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	for _, existing := range r.members {
		if existing.MemberCode == m.MemberCode {
			return apperrors.ErrMemberCodeExists
		}
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

// Creates reports how many inserts were attempted, including rejected ones
func (r *MemberRepository) Creates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creates
}

func (r *MemberRepository) List(_ context.Context) ([]*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Member{}
	for _, m := range r.members {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemberRepository) GetByID(_ context.Context, id int64) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MemberRepository) GetByCode(_ context.Context, code string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.MemberCode == code {
			cp := *m
			return &cp, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (r *MemberRepository) Update(_ context.Context, m *models.Member) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.members[m.ID]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	cp := *m
	cp.MemberCode = existing.MemberCode
	r.members[m.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemberRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return apperrors.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

// UserAccountRepository stores accounts; roles 1 (admin) and 2 (librarian) exist
type UserAccountRepository struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]*models.UserAccount
	roles    map[int64]string
}

// NewUserAccountRepository creates an empty UserAccountRepository
func NewUserAccountRepository() *UserAccountRepository {
	return &UserAccountRepository{
		accounts: map[int64]*models.UserAccount{},
		roles:    map[int64]string{1: models.RoleAdmin, 2: models.RoleLibrarian},
	}
}

func (r *UserAccountRepository) Create(_ context.Context, a *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.roles[a.UserRoleID]; !ok {
		return apperrors.ErrInvalidReference
	}
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.Username == a.Username {
			return apperrors.ErrUsernameExists
		}
	}
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *UserAccountRepository) project(a *models.UserAccount) *models.UserAccount {
	cp := *a
	cp.Password = ""
	cp.UserRole = &models.UserRole{ID: a.UserRoleID, UserRoleName: r.roles[a.UserRoleID]}
	return &cp
}

func (r *UserAccountRepository) List(_ context.Context) ([]*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.UserAccount{}
	for _, a := range r.accounts {
		out = append(out, r.project(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserAccountRepository) GetByID(_ context.Context, id int64) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.ErrUserAccountNotFound
	}
	return r.project(a), nil
}

func (r *UserAccountRepository) GetByEmailWithPassword(_ context.Context, email string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserAccountNotFound
}

func (r *UserAccountRepository) Update(_ context.Context, id int64, changes map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return apperrors.ErrUserAccountNotFound
	}
	for k, v := range changes {
		switch k {
		case "user_role_id":
			a.UserRoleID = v.(int64)
		case "email":
			a.Email = v.(string)
		case "username":
			a.Username = v.(string)
		case "password":
			a.Password = v.(string)
		case "is_activated":
			a.IsActivated = v.(bool)
		case "is_active":
			a.IsActive = v.(bool)
		}
	}
	return nil
}

func (r *UserAccountRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return apperrors.ErrUserAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

// BookRepository stores books in a map
type BookRepository struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]*models.Book
}

// NewBookRepository creates an empty BookRepository
func NewBookRepository() *BookRepository {
	return &BookRepository{books: map[int64]*models.Book{}}
}

func (r *BookRepository) Create(_ context.Context, b *models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.books {
		if existing.ISBN == b.ISBN {
			return apperrors.ErrISBNExists
		}
	}
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *BookRepository) sorted(byTitle bool) []*models.Book {
	out := []*models.Book{}
	for _, b := range r.books {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if byTitle && out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *BookRepository) List(_ context.Context) ([]*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(false), nil
}

func (r *BookRepository) ListPage(_ context.Context, offset, limit uint64) ([]*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(true)
	if offset >= uint64(len(all)) {
		return []*models.Book{}, nil
	}
	end := offset + limit
	if end > uint64(len(all)) {
		end = uint64(len(all))
	}
	return all[offset:end], nil
}

func (r *BookRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.books)), nil
}

func (r *BookRepository) GetByID(_ context.Context, id int64) (*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, apperrors.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *BookRepository) GetByISBN(_ context.Context, isbn string) (*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, apperrors.ErrBookNotFound
}

func (r *BookRepository) Update(_ context.Context, id int64, changes map[string]interface{}) (*models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, apperrors.ErrBookNotFound
	}
	for k, v := range changes {
		switch k {
		case "title":
			b.Title = v.(string)
		case "isbn":
			b.ISBN = v.(string)
		case "publication_year":
			y := v.(int32)
			b.PublicationYear = &y
		case "number_of_pages":
			n := v.(int32)
			b.NumberOfPages = &n
		default:
			if field := optionalBookText(b, k); field != nil {
				str := v.(string)
				*field = &str
			}
		}
	}
	cp := *b
	return &cp, nil
}

func (r *BookRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return apperrors.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

// AuthorRepository stores authors in a slice
type AuthorRepository struct {
	mu      sync.Mutex
	authors []*models.Author
}

func (r *AuthorRepository) Create(_ context.Context, a *models.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = int64(len(r.authors) + 1)
	cp := *a
	r.authors = append(r.authors, &cp)
	return nil
}

func (r *AuthorRepository) List(_ context.Context) ([]*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Author{}, r.authors...), nil
}

func (r *AuthorRepository) GetByID(_ context.Context, id int64) (*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrAuthorNotFound
}

// BookIssueRepository resolves references through the other repositories.
// Statuses 1..3 are checked-out, returned and overdue.
type BookIssueRepository struct {
	mu       sync.Mutex
	nextID   int64
	issues   map[int64]*models.BookIssue
	members  *MemberRepository
	books    *BookRepository
	accounts *UserAccountRepository
	statuses map[int64]string
}

// NewBookIssueRepository creates an empty BookIssueRepository
func NewBookIssueRepository(members *MemberRepository, books *BookRepository, accounts *UserAccountRepository) *BookIssueRepository {
	return &BookIssueRepository{
		issues:   map[int64]*models.BookIssue{},
		members:  members,
		books:    books,
		accounts: accounts,
		statuses: map[int64]string{1: models.StatusCheckedOut, 2: models.StatusReturned, 3: models.StatusOverdue},
	}
}

func (r *BookIssueRepository) checkRefs(ctx context.Context, bi *models.BookIssue) error {
	if _, err := r.members.GetByID(ctx, bi.MemberID); err != nil {
		return apperrors.ErrInvalidReference
	}
	if _, err := r.books.GetByID(ctx, bi.BookID); err != nil {
		return apperrors.ErrInvalidReference
	}
	if _, err := r.accounts.GetByID(ctx, bi.ProcessedByID); err != nil {
		return apperrors.ErrInvalidReference
	}
	if _, ok := r.statuses[bi.StatusID]; !ok {
		return apperrors.ErrInvalidReference
	}
	return nil
}

func (r *BookIssueRepository) Create(ctx context.Context, bi *models.BookIssue) error {
	if err := r.checkRefs(ctx, bi); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.issues {
		if strings.EqualFold(existing.TransactionCode, bi.TransactionCode) {
			return apperrors.ErrTransactionCodeExists
		}
	}
	r.nextID++
	bi.ID = r.nextID
	cp := *bi
	r.issues[bi.ID] = &cp
	return nil
}

func (r *BookIssueRepository) detail(ctx context.Context, bi *models.BookIssue) (*models.BookIssueDetail, error) {
	book, err := r.books.GetByID(ctx, bi.BookID)
	if err != nil {
		return nil, apperrors.ErrDanglingReference
	}
	member, err := r.members.GetByID(ctx, bi.MemberID)
	if err != nil {
		return nil, apperrors.ErrDanglingReference
	}
	processor, err := r.accounts.GetByID(ctx, bi.ProcessedByID)
	if err != nil {
		return nil, apperrors.ErrDanglingReference
	}
	return &models.BookIssueDetail{
		BookIssue:   *bi,
		Book:        *book,
		Member:      *member,
		ProcessedBy: *processor,
		Status:      models.BookIssueStatus{ID: bi.StatusID, Status: r.statuses[bi.StatusID]},
	}, nil
}

func (r *BookIssueRepository) List(ctx context.Context) ([]*models.BookIssueDetail, error) {
	r.mu.Lock()
	issues := make([]*models.BookIssue, 0, len(r.issues))
	for _, bi := range r.issues {
		cp := *bi
		issues = append(issues, &cp)
	}
	r.mu.Unlock()

	sort.Slice(issues, func(i, j int) bool { return issues[i].ID < issues[j].ID })
	out := []*models.BookIssueDetail{}
	for _, bi := range issues {
		d, err := r.detail(ctx, bi)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *BookIssueRepository) GetByID(ctx context.Context, id int64) (*models.BookIssueDetail, error) {
	r.mu.Lock()
	bi, ok := r.issues[id]
	r.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrBookIssueNotFound
	}
	cp := *bi
	return r.detail(ctx, &cp)
}

func (r *BookIssueRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.BookIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bi, ok := r.issues[id]
	if !ok {
		return nil, apperrors.ErrBookIssueNotFound
	}
	for k, v := range changes {
		switch k {
		case "member_id":
			bi.MemberID = v.(int64)
		case "book_id":
			bi.BookID = v.(int64)
		case "status_id":
			bi.StatusID = v.(int64)
		case "processed_by_id":
			bi.ProcessedByID = v.(int64)
		case "issue_date":
			bi.IssueDate = v.(time.Time)
		case "due_date":
			bi.DueDate = v.(time.Time)
		case "return_date":
			bi.ReturnDate = v.(*time.Time)
		}
	}
	cp := *bi
	return &cp, nil
}

func (r *BookIssueRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.issues[id]; !ok {
		return apperrors.ErrBookIssueNotFound
	}
	delete(r.issues, id)
	return nil
}

// Store bundles one of each repository, wired together
type Store struct {
	Members    *MemberRepository
	Accounts   *UserAccountRepository
	Books      *BookRepository
	Authors    *AuthorRepository
	BookIssues *BookIssueRepository
}

// NewStore creates an empty Store
func NewStore() *Store {
	members := NewMemberRepository()
	accounts := NewUserAccountRepository()
	books := NewBookRepository()
	return &Store{
		Members:    members,
		Accounts:   accounts,
		Books:      books,
		Authors:    &AuthorRepository{},
		BookIssues: NewBookIssueRepository(members, books, accounts),
	}
}

func optionalBookText(b *models.Book, column string) **string {
	switch column {
	case "authors":
		return &b.Authors
	case "publisher":
		return &b.Publisher
	case "edition":
		return &b.Edition
	case "genre":
		return &b.Genre
	case "language":
		return &b.Language
	case "cover_image_url":
		return &b.CoverImageURL
	case "shelf_location":
		return &b.ShelfLocation
	case "description":
		return &b.Description
	}
	return nil
}
