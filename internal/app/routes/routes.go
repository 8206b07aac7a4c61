package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/controllers"
)

// Controllers bundles the handlers mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	Member      *controllers.MemberController
	UserAccount *controllers.UserAccountController
	Book        *controllers.BookController
	Author      *controllers.AuthorController
	BookIssue   *controllers.BookIssueController
}

// SetupRouter configures all application routes. authGate protects every
// /api route except the member listing; authLimiter throttles /auth.
func SetupRouter(router *gin.Engine, c Controllers, authGate, authLimiter gin.HandlerFunc) {
	// --- Public Auth routes ---
	auth := router.Group("/auth")
	auth.Use(authLimiter)
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	api := router.Group("/api")

	// The member listing stays public for the catalogue front desk.
	api.GET("/members", c.Member.GetAllMembers)

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authGate)

	members := authenticated.Group("/members")
	{
		members.POST("", c.Member.CreateMember)
		members.GET("/code/:code", c.Member.GetMemberByCode)
		members.GET("/:id", c.Member.GetMemberByID)
		members.PUT("/:id", c.Member.UpdateMember)
		members.DELETE("/:id", c.Member.DeleteMember)
	}

	accounts := authenticated.Group("/user_accounts")
	{
		accounts.POST("", c.UserAccount.CreateUserAccount)
		accounts.GET("", c.UserAccount.GetAllUserAccounts)
		accounts.GET("/:id", c.UserAccount.GetUserAccountByID)
		accounts.PUT("/:id", c.UserAccount.UpdateUserAccount)
		accounts.DELETE("/:id", c.UserAccount.DeleteUserAccount)
	}

	books := authenticated.Group("/books")
	{
		books.POST("", c.Book.CreateBook)
		books.GET("", c.Book.GetAllBooks)
		books.GET("/pagination", c.Book.GetBooksPage)
		books.GET("/isbn/:isbn", c.Book.GetBookByISBN)
		books.GET("/:id", c.Book.GetBookByID)
		books.PUT("/:id", c.Book.UpdateBook)
		books.DELETE("/:id", c.Book.DeleteBook)
	}

	issues := authenticated.Group("/book_issues")
	{
		issues.POST("", c.BookIssue.CreateBookIssue)
		issues.GET("", c.BookIssue.GetAllBookIssues)
		issues.GET("/:id", c.BookIssue.GetBookIssueByID)
		issues.PUT("/:id", c.BookIssue.UpdateBookIssue)
		issues.DELETE("/:id", c.BookIssue.DeleteBookIssue)
	}

	authors := authenticated.Group("/authors")
	{
		authors.POST("", c.Author.CreateAuthor)
		authors.GET("", c.Author.GetAllAuthors)
		authors.GET("/:id", c.Author.GetAuthorByID)
	}
}
