package handler

import (
	"strings"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "item not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// conflictBody returns an ErrorResponse for a name-uniqueness violation.
// The message is extracted from the wrapped domain.ErrConflict error.
func conflictBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: unwrapMessage(err)}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ItemService.Create: validation error: name is required" →
// "name is required". Internal layer prefixes must never reach a response
// body; a conflict caught by the database constraint carries no message of
// its own and gets a static one.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.ItemService.Create: ",
		"service.ItemService.Update: ",
		"repo.ItemRepo.Create: ",
		"repo.ItemRepo.Update: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	for _, prefix := range []string{
		"validation error: ",
		"conflict: ",
	} {
		if rest := strings.TrimPrefix(msg, prefix); rest != msg && rest != "" {
			return rest
		}
	}
	if msg == domain.ErrConflict.Error() {
		return "name already in use"
	}
	return msg
}
