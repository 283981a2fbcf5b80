package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"github.com/qu18354531302/product-analytics-api/internal/domain"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/ingesting"
	"github.com/qu18354531302/product-analytics-api/pkg/apiErrors"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

// maxUploadSize bounds the in-memory part of a multipart upload.
const maxUploadSize = 32 << 20

func UploadPriceAdjustments(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		file, header, err := openUploadedFile(w, r)
		if err != nil {
			return
		}
		defer file.Close()

		logger.WithField("filename", header.Filename).Info("ingesting price adjustment workbook")

		result, err := service.IngestPriceAdjustments(r.Context(), file)
		if err != nil {
			writeUploadError(w, logger, err)
			return
		}

		writeJSON(w, logger, result)
	})
}

func UploadDailyMetrics(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		file, header, err := openUploadedFile(w, r)
		if err != nil {
			return
		}
		defer file.Close()

		logger.WithField("filename", header.Filename).Info("ingesting daily metric workbook")

		result, err := service.IngestDailyMetrics(r.Context(), file)
		if err != nil {
			writeUploadError(w, logger, err)
			return
		}

		writeJSON(w, logger, result)
	})
}

// openUploadedFile extracts the workbook part from a multipart request.
// The error response is already written when it returns an error.
func openUploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingFile, "Request is not a valid multipart upload", nil)
		return nil, nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingFile, "Missing file in upload", nil)
		return nil, nil, err
	}

	return file, header, nil
}

func writeUploadError(w http.ResponseWriter, logger log.Logger, err error) {
	var batchErr *ingesting.BatchValidationError
	if errors.As(err, &batchErr) {
		apiErrors.WriteError(w, apiErrors.ErrTooManyRowErrors, batchErr.Error(), batchErr.Errors)
		return
	}

	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidWorkbook, valErr.Message, nil)
		return
	}

	writeServiceError(w, logger, err)
}
