package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/web"
)

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	repo := content.NewRepository(nil, nil, nil)
	repo.Initialize(context.Background())

	s, err := web.NewServer(repo, nil)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func getBody(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(raw)
}

func TestHomePage(t *testing.T) {
	srv := newSite(t)
	status, body := getBody(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Smiles of Hope") {
		t.Error("home page missing site name")
	}
	if !strings.Contains(body, `data-view="home"`) {
		t.Error("home page missing view marker")
	}
}

func TestEveryViewPageRenders(t *testing.T) {
	srv := newSite(t)
	for _, path := range []string{"/about", "/programs", "/missions", "/donate", "/join", "/contact", "/admin"} {
		status, body := getBody(t, srv.URL+path)
		if status != http.StatusOK {
			t.Errorf("%s status = %d", path, status)
		}
		if !strings.Contains(body, "data-view=") {
			t.Errorf("%s body missing view marker", path)
		}
	}
}

func TestUnknownPathFallsBackToHome(t *testing.T) {
	srv := newSite(t)
	status, body := getBody(t, srv.URL+"/nonexistent")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, `data-view="home"`) {
		t.Error("unknown path did not render home")
	}
}

func TestMissionDetailPage(t *testing.T) {
	srv := newSite(t)
	status, body := getBody(t, srv.URL+"/missions/1")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, `data-view="mission-detail"`) {
		t.Error("detail page missing view marker")
	}
}

func TestMissionDetailUnknownID(t *testing.T) {
	srv := newSite(t)
	status, _ := getBody(t, srv.URL+"/missions/999")
	if status != http.StatusNotFound {
		t.Errorf("status = %d", status)
	}
}

func TestMissionDetailPathWithoutIDRendersHome(t *testing.T) {
	srv := newSite(t)
	status, body := getBody(t, srv.URL+"/mission-detail")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, `data-view="home"`) {
		t.Error("bare mission-detail path should render home")
	}
}

func TestAdminPageHidesSiteChrome(t *testing.T) {
	srv := newSite(t)
	_, body := getBody(t, srv.URL+"/admin")
	if strings.Contains(body, "<footer>") {
		t.Error("admin page shows the public footer")
	}
	_, home := getBody(t, srv.URL+"/")
	if !strings.Contains(home, "<footer>") {
		t.Error("public page missing footer")
	}
}

func TestStaticAssetsServed(t *testing.T) {
	srv := newSite(t)
	status, body := getBody(t, srv.URL+"/static/site.css")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body == "" {
		t.Error("stylesheet is empty")
	}
}
