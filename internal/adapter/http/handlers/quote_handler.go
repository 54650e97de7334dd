package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	request "wheelworks/internal/adapter/http/dto/request"
	response "wheelworks/internal/adapter/http/dto/response"
	"wheelworks/internal/usecase"
	"wheelworks/internal/usecase/interfaces"
	"wheelworks/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

const (
	maxPhotoCount = 6
	maxPhotoBytes = 10 << 20 // per file
)

// QuoteHandler handles the public quote-wizard submission.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote accepts either a plain JSON body or a multipart form with a
// `payload` JSON field plus zero or more `photos` file parts.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	payload, photos, err := readQuoteSubmission(c)
	if err != nil {
		log.Printf("[quote][handler] invalid submission err=%v", err)
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand(photos))
	if err != nil {
		log.Printf("[quote][handler] submit failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] submit success quote_id=%s photos=%d", created.ID, len(photos))

	c.JSON(http.StatusCreated, response.FromSubmittedQuote(created))
}

func readQuoteSubmission(c *gin.Context) (request.QuoteRequest, []interfaces.Attachment, error) {
	var payload request.QuoteRequest

	contentType := c.ContentType()
	if !strings.HasPrefix(contentType, "multipart/") {
		if err := c.ShouldBindJSON(&payload); err != nil {
			return request.QuoteRequest{}, nil, err
		}
		return payload, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return request.QuoteRequest{}, nil, err
	}

	raw := ""
	if values := form.Value["payload"]; len(values) > 0 {
		raw = values[0]
	}
	if strings.TrimSpace(raw) == "" {
		return request.QuoteRequest{}, nil, errors.New("missing payload field")
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return request.QuoteRequest{}, nil, err
	}
	if err := binding.Validator.ValidateStruct(&payload); err != nil {
		return request.QuoteRequest{}, nil, err
	}

	photos, err := readPhotos(form.File["photos"])
	if err != nil {
		return request.QuoteRequest{}, nil, err
	}
	return payload, photos, nil
}

func readPhotos(files []*multipart.FileHeader) ([]interfaces.Attachment, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxPhotoCount {
		return nil, errors.New("too many photos")
	}

	photos := make([]interfaces.Attachment, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxPhotoBytes {
			return nil, errors.New("photo too large")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		if len(content) > maxPhotoBytes {
			return nil, errors.New("photo too large")
		}
		photos = append(photos, interfaces.Attachment{
			FileName: fh.Filename,
			MIMEType: fh.Header.Get("Content-Type"),
			Content:  content,
		})
	}
	return photos, nil
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteContact), errors.Is(err, usecase.ErrInvalidQuoteService):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		// Persistence failures stay generic: the caller only needs to know
		// that no record was created.
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
