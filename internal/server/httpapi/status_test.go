package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"cookenu/internal/common"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{common.ErrorMissingToken, http.StatusUnauthorized},
		{common.ErrorInvalidToken, http.StatusUnauthorized},
		{common.ErrorUnauthorized, http.StatusUnauthorized},
		{common.ErrorInvalidRequest, http.StatusBadRequest},
		{common.ErrorValidation, http.StatusUnprocessableEntity},
		{common.ErrorNotFound, http.StatusNotFound},
		{common.ErrorSelfDelete, http.StatusForbidden},
		{common.ErrorForbidden, http.StatusForbidden},
		{common.ErrorAlreadyExists, http.StatusConflict},
		{common.ErrorInternal, http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_SeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("%w: Recipe not found", common.ErrorNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(err))
}
