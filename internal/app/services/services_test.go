package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/repositories/memory"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/auth"
	"github.com/wmad/library-backend/internal/pkg/dates"
	"github.com/wmad/library-backend/internal/pkg/identifier"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }
func int64Ptr(i int64) *int64  { return &i }

func datePtr(y int, m time.Month, d int) *dates.Date {
	v := dates.New(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func validMemberRequest() *dto.MemberRequest {
	return &dto.MemberRequest{
		Fullname:    strPtr("Jane Doe"),
		DateOfBirth: datePtr(1990, 5, 17),
		Address:     strPtr("12 Library Lane"),
		PhoneNumber: strPtr("555-0100"),
		Email:       strPtr("jane@example.com"),
		StartDate:   datePtr(2024, 1, 1),
		ExpiryDate:  datePtr(2025, 1, 1),
		IsActive:    boolPtr(true),
	}
}

// sequence returns the given codes in order, then fails
func sequence(codes ...string) identifier.Generator {
	i := 0
	return func() (string, error) {
		if i >= len(codes) {
			return "", fmt.Errorf("sequence exhausted")
		}
		code := codes[i]
		i++
		return code, nil
	}
}

func TestCreateMemberGeneratesCode(t *testing.T) {
	repo := memory.NewMemberRepository()
	svc := NewMemberService(repo, nil)

	member, err := svc.CreateMember(context.Background(), validMemberRequest())
	require.NoError(t, err)
	assert.NotZero(t, member.ID)
	assert.Len(t, member.MemberCode, identifier.CodeLength)
	assert.Regexp(t, `^[0-9A-Z]{6}$`, member.MemberCode)
}

func TestCreateMemberRetriesOnCollision(t *testing.T) {
	repo := memory.NewMemberRepository()
	first := NewMemberService(repo, sequence("AAAAAA"))
	_, err := first.CreateMember(context.Background(), validMemberRequest())
	require.NoError(t, err)

	svc := NewMemberService(repo, sequence("AAAAAA", "BBBBBB"))
	member, err := svc.CreateMember(context.Background(), validMemberRequest())
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", member.MemberCode)
}

func TestCreateMemberRetryExhausted(t *testing.T) {
	repo := memory.NewMemberRepository()
	_, err := NewMemberService(repo, sequence("AAAAAA")).CreateMember(context.Background(), validMemberRequest())
	require.NoError(t, err)

	svc := NewMemberService(repo, sequence("AAAAAA", "AAAAAA", "AAAAAA", "BBBBBB"))
	_, err = svc.CreateMember(context.Background(), validMemberRequest())
	assert.ErrorIs(t, err, apperrors.ErrIdentifierRetryExhausted)
	assert.ErrorIs(t, err, apperrors.ErrMemberCodeExists)
	assert.Equal(t, 4, repo.Creates())
}

func TestCreateMemberInvalidSkipsPersistence(t *testing.T) {
	repo := memory.NewMemberRepository()
	svc := NewMemberService(repo, nil)

	req := validMemberRequest()
	req.IsActive = nil

	_, err := svc.CreateMember(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, InvalidMemberDataMessage)
	assert.Equal(t, 0, repo.Creates())
}

func TestUpdateMemberKeepsCode(t *testing.T) {
	repo := memory.NewMemberRepository()
	svc := NewMemberService(repo, nil)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, validMemberRequest())
	require.NoError(t, err)

	req := validMemberRequest()
	req.Fullname = strPtr("Jane Q. Doe")
	req.IsActive = boolPtr(false)
	updated, err := svc.UpdateMember(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.MemberCode, updated.MemberCode)
	assert.Equal(t, "Jane Q. Doe", updated.Fullname)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateMember(ctx, 999, validMemberRequest())
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestGetMemberByCodeIsCaseInsensitive(t *testing.T) {
	repo := memory.NewMemberRepository()
	svc := NewMemberService(repo, sequence("AB12CD"))
	ctx := context.Background()

	_, err := svc.CreateMember(ctx, validMemberRequest())
	require.NoError(t, err)

	member, err := svc.GetMemberByCode(ctx, "ab12cd")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", member.MemberCode)

	_, err = svc.GetMemberByCode(ctx, "short")
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestDeleteMember(t *testing.T) {
	svc := NewMemberService(memory.NewMemberRepository(), nil)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, validMemberRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(ctx, created.ID))
	_, err = svc.GetMemberByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	assert.ErrorIs(t, svc.DeleteMember(ctx, created.ID), apperrors.ErrMemberNotFound)
}

func TestUserAccountDefaultsAndProjection(t *testing.T) {
	repo := memory.NewUserAccountRepository()
	svc := NewUserAccountService(repo)
	ctx := context.Background()

	account, err := svc.CreateUserAccount(ctx, &dto.CreateUserAccountRequest{
		UserRoleID: 2,
		Email:      strPtr("lib@example.com"),
		Username:   strPtr("lib"),
		Password:   strPtr("hunter2"),
	})
	require.NoError(t, err)

	assert.False(t, account.IsActivated)
	assert.True(t, account.IsActive)
	assert.Empty(t, account.Password)
	require.NotNil(t, account.UserRole)
	assert.Equal(t, models.RoleLibrarian, account.UserRole.UserRoleName)

	stored, err := repo.GetByEmailWithPassword(ctx, "lib@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "hunter2"))
}

func TestUserAccountCreateValidation(t *testing.T) {
	svc := NewUserAccountService(memory.NewUserAccountRepository())

	_, err := svc.CreateUserAccount(context.Background(), &dto.CreateUserAccountRequest{Email: strPtr("x@example.com")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateUserAccount(context.Background(), &dto.CreateUserAccountRequest{
		UserRoleID: 77, Email: strPtr("x@example.com"), Username: strPtr("x"), Password: strPtr("p"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestUserAccountUpdateRehashesPassword(t *testing.T) {
	repo := memory.NewUserAccountRepository()
	svc := NewUserAccountService(repo)
	ctx := context.Background()

	account, err := svc.CreateUserAccount(ctx, &dto.CreateUserAccountRequest{
		UserRoleID: 1, Email: strPtr("a@example.com"), Username: strPtr("a"), Password: strPtr("old"), IsActivated: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, account.IsActivated)

	updated, err := svc.UpdateUserAccount(ctx, account.ID, &dto.UpdateUserAccountRequest{
		Password: strPtr("new"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "a", updated.Username)

	stored, err := repo.GetByEmailWithPassword(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "new"))

	_, err = svc.UpdateUserAccount(ctx, 404, &dto.UpdateUserAccountRequest{})
	assert.ErrorIs(t, err, apperrors.ErrUserAccountNotFound)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	repo := memory.NewUserAccountRepository()
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test"})
	svc := NewAuthService(repo, jwtSvc)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: strPtr("lib"), Email: strPtr("lib@example.com"), Password: strPtr("hunter2"), UserRoleID: 2,
	})
	require.NoError(t, err)
	assert.True(t, registered.User.Active)
	assert.Equal(t, int64(2), registered.User.UserRoleID)

	claims, err := jwtSvc.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: strPtr("other"), Email: strPtr("lib@example.com"), Password: strPtr("x"), UserRoleID: 2,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Email: "lib@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "lib@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "hunter2"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func seedBooks(t *testing.T, svc BookService, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := svc.CreateBook(context.Background(), &dto.BookRequest{
			Title: strPtr(fmt.Sprintf("Book %02d", i)),
			ISBN:  strPtr(fmt.Sprintf("978-%04d", i)),
		})
		require.NoError(t, err)
	}
}

func TestBooksPagination(t *testing.T) {
	svc := NewBookService(memory.NewBookRepository())
	seedBooks(t, svc, 25)
	ctx := context.Background()

	page, err := svc.GetBooksPage(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, "Book 01", page.Data[0].Title)

	page, err = svc.GetBooksPage(ctx, 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, "Book 21", page.Data[0].Title)

	page, err = svc.GetBooksPage(ctx, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 4, page.CurrentPage)
}

func TestBooksPaginationEmpty(t *testing.T) {
	svc := NewBookService(memory.NewBookRepository())

	page, err := svc.GetBooksPage(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestBookCreateAndPartialUpdate(t *testing.T) {
	svc := NewBookService(memory.NewBookRepository())
	ctx := context.Background()

	_, err := svc.CreateBook(ctx, &dto.BookRequest{Title: strPtr("No ISBN")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	book, err := svc.CreateBook(ctx, &dto.BookRequest{
		Title: strPtr("Dune"), ISBN: strPtr("9780441013593"), Genre: strPtr("SF"),
	})
	require.NoError(t, err)

	_, err = svc.CreateBook(ctx, &dto.BookRequest{Title: strPtr("Dune again"), ISBN: strPtr("9780441013593")})
	assert.ErrorIs(t, err, apperrors.ErrISBNExists)

	year := int32(1965)
	updated, err := svc.UpdateBook(ctx, book.ID, &dto.BookRequest{PublicationYear: &year, Authors: strPtr("Frank Herbert")})
	require.NoError(t, err)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, "SF", *updated.Genre)
	assert.Equal(t, int32(1965), *updated.PublicationYear)

	byISBN, err := svc.GetBookByISBN(ctx, "9780441013593")
	require.NoError(t, err)
	assert.Equal(t, book.ID, byISBN.ID)

	blank, err := svc.UpdateBook(ctx, book.ID, &dto.BookRequest{Title: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", blank.Title)
	assert.Equal(t, "9780441013593", blank.ISBN)
}

func TestBookCreateAcceptsEmptyStrings(t *testing.T) {
	svc := NewBookService(memory.NewBookRepository())

	book, err := svc.CreateBook(context.Background(), &dto.BookRequest{Title: strPtr(""), ISBN: strPtr("X")})
	require.NoError(t, err)
	assert.Equal(t, "", book.Title)
	assert.Equal(t, "X", book.ISBN)
}

func TestAuthorService(t *testing.T) {
	svc := NewAuthorService(&memory.AuthorRepository{})
	ctx := context.Background()

	_, err := svc.CreateAuthor(ctx, &dto.CreateAuthorRequest{FirstName: "Ursula"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	author, err := svc.CreateAuthor(ctx, &dto.CreateAuthorRequest{FirstName: "Ursula", LastName: "Le Guin"})
	require.NoError(t, err)

	got, err := svc.GetAuthorByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Le Guin", got.LastName)

	_, err = svc.GetAuthorByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrAuthorNotFound)
}

type issueFixture struct {
	store    *memory.Store
	svc      BookIssueService
	memberID int64
	bookID   int64
	staffID  int64
}

func newIssueFixture(t *testing.T, gen identifier.Generator) *issueFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	member, err := NewMemberService(store.Members, nil).CreateMember(ctx, validMemberRequest())
	require.NoError(t, err)
	book, err := NewBookService(store.Books).CreateBook(ctx, &dto.BookRequest{Title: strPtr("Dune"), ISBN: strPtr("1")})
	require.NoError(t, err)
	staff, err := NewUserAccountService(store.Accounts).CreateUserAccount(ctx, &dto.CreateUserAccountRequest{
		UserRoleID: 2, Email: strPtr("s@example.com"), Username: strPtr("staff"), Password: strPtr("p"),
	})
	require.NoError(t, err)

	return &issueFixture{
		store:    store,
		svc:      NewBookIssueService(store.BookIssues, gen),
		memberID: member.ID,
		bookID:   book.ID,
		staffID:  staff.ID,
	}
}

func (f *issueFixture) request() *dto.CreateBookIssueRequest {
	return &dto.CreateBookIssueRequest{
		MemberID:      f.memberID,
		BookID:        f.bookID,
		IssueDate:     datePtr(2024, 3, 1),
		DueDate:       datePtr(2024, 3, 15),
		StatusID:      1,
		ProcessedByID: f.staffID,
	}
}

func TestBookIssueLifecycle(t *testing.T) {
	f := newIssueFixture(t, nil)
	ctx := context.Background()

	issue, err := f.svc.CreateBookIssue(ctx, f.request())
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-Z]{6}$`, issue.TransactionCode)
	assert.Nil(t, issue.ReturnDate)

	detail, err := f.svc.GetBookIssueByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", detail.Book.Title)
	assert.Equal(t, models.StatusCheckedOut, detail.Status.Status)
	assert.Equal(t, models.RoleLibrarian, detail.ProcessedBy.UserRole.UserRoleName)

	// Setting a return date leaves the status alone.
	returned := dates.NullableDate{Set: true, Valid: true, Time: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}
	updated, err := f.svc.UpdateBookIssue(ctx, issue.ID, &dto.UpdateBookIssueRequest{ReturnDate: returned})
	require.NoError(t, err)
	require.NotNil(t, updated.ReturnDate)
	assert.Equal(t, int64(1), updated.StatusID)
	assert.Equal(t, issue.TransactionCode, updated.TransactionCode)

	cleared, err := f.svc.UpdateBookIssue(ctx, issue.ID, &dto.UpdateBookIssueRequest{
		ReturnDate: dates.NullableDate{Set: true},
		StatusID:   int64Ptr(2),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.ReturnDate)
	assert.Equal(t, int64(2), cleared.StatusID)

	require.NoError(t, f.svc.DeleteBookIssue(ctx, issue.ID))
	_, err = f.svc.GetBookIssueByID(ctx, issue.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookIssueNotFound)
}

func TestBookIssueValidationAndReferences(t *testing.T) {
	f := newIssueFixture(t, nil)
	ctx := context.Background()

	req := f.request()
	req.DueDate = nil
	_, err := f.svc.CreateBookIssue(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = f.request()
	req.BookID = 999
	_, err = f.svc.CreateBookIssue(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestBookIssueTransactionCodeRetry(t *testing.T) {
	f := newIssueFixture(t, sequence("TX0001", "TX0001", "TX0002"))
	ctx := context.Background()

	first, err := f.svc.CreateBookIssue(ctx, f.request())
	require.NoError(t, err)
	second, err := f.svc.CreateBookIssue(ctx, f.request())
	require.NoError(t, err)

	assert.Equal(t, "TX0001", first.TransactionCode)
	assert.Equal(t, "TX0002", second.TransactionCode)
}

func TestBookIssueListFailsOnDanglingReference(t *testing.T) {
	f := newIssueFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.CreateBookIssue(ctx, f.request())
	require.NoError(t, err)

	// The in-memory store has no foreign keys, so the member can vanish.
	require.NoError(t, f.store.Members.Delete(ctx, f.memberID))

	_, err = f.svc.GetAllBookIssues(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDanglingReference)
}
