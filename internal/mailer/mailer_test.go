package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, status int) (*Client, *[]sendRequest) {
	t.Helper()
	var got []sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		got = append(got, req)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		Endpoint:  srv.URL,
		ServiceID: "service_abc",
		PublicKey: "pk_123",
		LeadEmail: "lead@example.org",
	}, nil)
	c.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return c, &got
}

func TestSendContact(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK)

	err := c.SendContact(context.Background(), ContactForm{
		FromName:  "Pat",
		FromEmail: "pat@example.org",
		Message:   "Hello there",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(*got) != 1 {
		t.Fatalf("got %d requests", len(*got))
	}
	req := (*got)[0]
	if req.ServiceID != "service_abc" || req.UserID != "pk_123" || req.TemplateID != templateContact {
		t.Errorf("request envelope = %+v", req)
	}
	p := req.TemplateParams
	if p["to_email"] != "lead@example.org" {
		t.Errorf("to_email = %q", p["to_email"])
	}
	if p["subject"] != "New Contact Form Submission" {
		t.Errorf("default subject = %q", p["subject"])
	}
	if p["form_type"] != "Contact Form" || p["submission_date"] == "" {
		t.Errorf("params = %+v", p)
	}
}

func TestSendJoin_DefaultsInterest(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK)

	err := c.SendJoin(context.Background(), JoinForm{
		FullName:     "Pat",
		EmailAddress: "pat@example.org",
	})
	if err != nil {
		t.Fatal(err)
	}
	p := (*got)[0].TemplateParams
	if p["area_of_interest"] != "Not specified" {
		t.Errorf("area_of_interest = %q", p["area_of_interest"])
	}
	if (*got)[0].TemplateID != templateJoin {
		t.Errorf("template = %q", (*got)[0].TemplateID)
	}
}

func TestSendDonate(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK)

	err := c.SendDonate(context.Background(), DonateForm{
		FirstName: "Pat",
		LastName:  "Lee",
		Email:     "pat@example.org",
		Amount:    "50",
	})
	if err != nil {
		t.Fatal(err)
	}
	p := (*got)[0].TemplateParams
	if p["from_name"] != "Pat Lee" || p["amount"] != "50" {
		t.Errorf("params = %+v", p)
	}
}

func TestSendValidatesBeforeDispatch(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK)

	cases := []error{
		c.SendContact(context.Background(), ContactForm{FromName: "Pat"}),
		c.SendContact(context.Background(), ContactForm{FromName: "Pat", FromEmail: "not-an-email", Message: "m"}),
		c.SendJoin(context.Background(), JoinForm{FullName: "Pat"}),
		c.SendDonate(context.Background(), DonateForm{FirstName: "Pat", Email: "pat@example.org"}),
	}
	for i, err := range cases {
		if err == nil {
			t.Errorf("case %d: invalid form accepted", i)
		}
	}
	if len(*got) != 0 {
		t.Errorf("%d requests dispatched for invalid forms", len(*got))
	}
}

func TestSendReportsServiceFailure(t *testing.T) {
	c, _ := newTestClient(t, http.StatusBadGateway)
	err := c.SendContact(context.Background(), ContactForm{
		FromName:  "Pat",
		FromEmail: "pat@example.org",
		Message:   "m",
	})
	if err == nil {
		t.Error("5xx response not surfaced")
	}
}

func TestSendUnconfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	err := c.SendContact(context.Background(), ContactForm{
		FromName:  "Pat",
		FromEmail: "pat@example.org",
		Message:   "m",
	})
	if err == nil {
		t.Error("unconfigured relay did not error")
	}
}

func TestConfigEnabled(t *testing.T) {
	if (Config{}).Enabled() {
		t.Error("empty config reported enabled")
	}
	full := Config{Endpoint: "http://x", ServiceID: "s", PublicKey: "k"}
	if !full.Enabled() {
		t.Error("complete config reported disabled")
	}
	partial := full
	partial.PublicKey = ""
	if partial.Enabled() {
		t.Error("partial config reported enabled")
	}
}
