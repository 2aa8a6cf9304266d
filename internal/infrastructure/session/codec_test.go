package session

import (
	"testing"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

func TestEncodeDecode(t *testing.T) {
	in := domain.Session{Token: "tok", User: domain.User{ID: 4, Email: "a@b.c", FullName: "A", Role: domain.RoleAdmin}}

	token, user, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if token != "tok" || user == "" {
		t.Fatalf("unexpected entries: %q %q", token, user)
	}

	out, err := Decode(token, user)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out == nil || out.Token != "tok" || out.User != in.User {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestDecode_HalfPairIsNoSession(t *testing.T) {
	if s, err := Decode("tok", ""); s != nil || err != nil {
		t.Fatalf("token without user: %+v %v", s, err)
	}
	if s, err := Decode("", `{"id":1}`); s != nil || err != nil {
		t.Fatalf("user without token: %+v %v", s, err)
	}
}

func TestDecode_CorruptUser(t *testing.T) {
	if _, err := Decode("tok", "{not json"); err == nil {
		t.Fatalf("expected error for corrupt user entry")
	}
}
