package domain_test

import (
	"testing"

	"github.com/profiled/accounts/internal/account/domain"
)

func TestUser_TokenList(t *testing.T) {
	user := domain.User{}

	user.AppendToken("t1")
	user.AppendToken("t2")
	user.AppendToken("t3")

	if !user.HasToken("t2") {
		t.Error("expected t2 on the list")
	}
	if user.HasToken("t4") {
		t.Error("did not expect t4 on the list")
	}

	if !user.RemoveToken("t2") {
		t.Error("expected removal of t2 to report true")
	}
	if user.HasToken("t2") {
		t.Error("expected t2 to be gone")
	}
	if len(user.Tokens) != 2 {
		t.Errorf("expected 2 tokens, got %d", len(user.Tokens))
	}

	if user.RemoveToken("t2") {
		t.Error("expected second removal to report false")
	}

	user.ClearTokens()
	if len(user.Tokens) != 0 {
		t.Errorf("expected empty list, got %v", user.Tokens)
	}
}

func TestProfileField_Updatable(t *testing.T) {
	updatable := []domain.ProfileField{
		domain.FieldEmail,
		domain.FieldDescription,
		domain.FieldPicture,
		domain.FieldLink,
	}
	for _, field := range updatable {
		if !field.Updatable() {
			t.Errorf("expected %s to be updatable", field)
		}
	}

	for _, field := range []domain.ProfileField{"username", "password_hash", "tokens", "id", ""} {
		if field.Updatable() {
			t.Errorf("expected %q not to be updatable", field)
		}
	}
}

func TestUser_SetProfileField(t *testing.T) {
	user := domain.User{}

	user.SetProfileField(domain.FieldEmail, "a@x.com")
	user.SetProfileField(domain.FieldDescription, "desc")
	user.SetProfileField(domain.FieldPicture, "pic.png")
	user.SetProfileField(domain.FieldLink, "https://x.com")

	if user.Email != "a@x.com" || user.Description != "desc" || user.Picture != "pic.png" || user.Link != "https://x.com" {
		t.Errorf("unexpected user after updates: %+v", user)
	}
}
