package utils

import (
	"context"
	"testing"

	"github.com/ndanilenko/authgate/models"
)

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if userID != 42 {
		t.Errorf("expected 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestGetAuthUserFromContext_Found(t *testing.T) {
	payload := models.AuthenticatedUser{ID: 42, Nickname: "john", Email: "john@example.com"}
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, payload)

	user, ok := GetAuthUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if user != payload {
		t.Errorf("expected %+v, got %+v", payload, user)
	}
}

func TestGetAuthUserFromContext_Missing(t *testing.T) {
	if _, ok := GetAuthUserFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
