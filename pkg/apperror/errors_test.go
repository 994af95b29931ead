package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"validation", NewValidationError("bad input"), KindValidation},
		{"storage", NewStorageError("disk gone"), KindStorage},
		{"render", NewRenderError("cannot render"), KindRender},
		{"not found", NewNotFoundError("Customer"), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsKind(tt.err, tt.kind) {
				t.Errorf("IsKind(%v, %s) = false", tt.err, tt.kind)
			}
		})
	}

	if !IsValidation(NewValidationError("x")) {
		t.Error("IsValidation failed on a validation error")
	}
	if IsValidation(NewStorageError("x")) {
		t.Error("IsValidation matched a storage error")
	}
	if IsStorage(errors.New("plain")) {
		t.Error("IsStorage matched a plain error")
	}
}

func TestErrorKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while finalizing: %w", NewStorageError("disk gone"))

	if !IsStorage(wrapped) {
		t.Error("storage kind lost through wrapping")
	}
	appErr := GetAppError(wrapped)
	if appErr == nil {
		t.Fatal("GetAppError failed on a wrapped error")
	}
	if appErr.Kind != KindStorage {
		t.Errorf("kind: got %s, want %s", appErr.Kind, KindStorage)
	}
}
