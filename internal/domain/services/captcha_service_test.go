package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawsconnect-http-service/internal/infrastructure/config"
)

func TestCaptchaPresenceOnlyWhenUnconfigured(t *testing.T) {
	s := NewCaptchaService(&config.Config{})

	ok, err := s.Verify("some-token", "")
	if err != nil || !ok {
		t.Errorf("non-empty token should pass without a verify URL, got ok=%v err=%v", ok, err)
	}

	ok, err = s.Verify("   ", "")
	if err != nil || ok {
		t.Errorf("blank token must fail, got ok=%v err=%v", ok, err)
	}
}

func TestCaptchaVerifyAgainstIssuer(t *testing.T) {
	var gotToken, gotIP string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotToken = r.PostForm.Get("response")
		gotIP = r.PostForm.Get("remoteip")

		w.Header().Set("Content-Type", "application/json")
		if gotToken == "good" {
			w.Write([]byte(`{"success":true}`))
		} else {
			w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}
	}))
	defer server.Close()

	s := NewCaptchaService(&config.Config{
		CaptchaVerifyURL: server.URL,
		CaptchaSecret:    "sk",
	})

	ok, err := s.Verify("good", "203.0.113.7")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("expected verification to pass")
	}
	if gotToken != "good" || gotIP != "203.0.113.7" {
		t.Errorf("issuer received token=%q ip=%q", gotToken, gotIP)
	}

	ok, err = s.Verify("bad", "")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("expected verification to fail")
	}
}
