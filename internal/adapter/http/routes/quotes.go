package routes

import (
	"wheelworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Public intake endpoint used by the quote wizard.
		quotes.POST("", quoteHandler.CreateQuote)
	}
}
