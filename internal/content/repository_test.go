package content_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/kvstore"
	"github.com/smilesofhope/hopecms/internal/models"
	"github.com/smilesofhope/hopecms/internal/testutil"
)

func newMemoryRepo(t *testing.T) *content.Repository {
	t.Helper()
	repo := content.NewRepository(nil, nil, nil)
	repo.Initialize(context.Background())
	return repo
}

func TestInitialize_SeedsBundledDefaults(t *testing.T) {
	repo := newMemoryRepo(t)
	posts := repo.List()
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3 bundled defaults", len(posts))
	}
	for _, p := range posts {
		if p.ID == "" || p.Title == "" {
			t.Errorf("seed post missing fields: %+v", p)
		}
	}
}

func TestUpsert_NewPostPrepends(t *testing.T) {
	repo := newMemoryRepo(t)
	before := repo.Len()

	p := models.Draft{Title: "New Mission", Excerpt: "e", Content: "c"}.Finalize()
	repo.Upsert(context.Background(), p)

	posts := repo.List()
	if len(posts) != before+1 {
		t.Fatalf("got %d posts, want %d", len(posts), before+1)
	}
	if posts[0].ID != p.ID {
		t.Errorf("new post should be first, got %q", posts[0].ID)
	}
	seen := make(map[string]bool)
	for _, q := range posts {
		if seen[q.ID] {
			t.Errorf("duplicate id %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestUpsert_ExistingReplacesInPlace(t *testing.T) {
	repo := newMemoryRepo(t)
	posts := repo.List()
	target := posts[1]
	target.Title = "Edited Title"

	repo.Upsert(context.Background(), target)

	after := repo.List()
	if len(after) != len(posts) {
		t.Fatalf("list length changed: %d -> %d", len(posts), len(after))
	}
	if after[1].ID != target.ID || after[1].Title != "Edited Title" {
		t.Errorf("post not replaced in place: %+v", after[1])
	}
	if after[0].ID != posts[0].ID || after[2].ID != posts[2].ID {
		t.Error("neighboring posts moved")
	}
}

func TestUpsert_Idempotent(t *testing.T) {
	repo := newMemoryRepo(t)
	p := models.Draft{Title: "Once", Excerpt: "e", Content: "c"}.Finalize()

	repo.Upsert(context.Background(), p)
	first := repo.List()
	repo.Upsert(context.Background(), p)
	second := repo.List()

	if len(first) != len(second) {
		t.Fatalf("repeated upsert changed length: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("order changed at %d: %q -> %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestRemove_MissingIDIsNoOp(t *testing.T) {
	repo := newMemoryRepo(t)
	before := repo.List()

	if repo.Remove(context.Background(), "no-such-id") {
		t.Error("Remove reported true for absent id")
	}
	after := repo.List()
	if len(after) != len(before) {
		t.Errorf("list changed: %d -> %d", len(before), len(after))
	}
}

func TestRemove_DeletesExisting(t *testing.T) {
	repo := newMemoryRepo(t)
	posts := repo.List()
	victim := posts[0].ID

	if !repo.Remove(context.Background(), victim) {
		t.Fatal("Remove reported false for existing id")
	}
	if _, ok := repo.Get(victim); ok {
		t.Error("removed post still retrievable")
	}
	if repo.Len() != len(posts)-1 {
		t.Errorf("length = %d, want %d", repo.Len(), len(posts)-1)
	}
}

func TestListAndGet_ReturnCopies(t *testing.T) {
	repo := newMemoryRepo(t)

	snap := repo.List()
	snap[0].Title = "mutated"
	if p, _ := repo.Get(snap[0].ID); p.Title == "mutated" {
		t.Error("List exposed internal state")
	}

	p, ok := repo.Get("1")
	if !ok {
		t.Fatal("seed post 1 missing")
	}
	if len(p.Gallery) > 0 {
		p.Gallery[0] = "mutated"
		again, _ := repo.Get("1")
		if again.Gallery[0] == "mutated" {
			t.Error("Get exposed internal gallery slice")
		}
	}
}

func TestPersistence_SurvivesReload(t *testing.T) {
	store := testutil.TestStore(t)
	ctx := context.Background()

	repo := content.NewRepository(store, nil, nil)
	repo.Initialize(ctx)
	p := models.Draft{Title: "Durable", Excerpt: "e", Content: "c"}.Finalize()
	repo.Upsert(ctx, p)
	repo.Remove(ctx, "3")

	fresh := content.NewRepository(store, nil, nil)
	fresh.Initialize(ctx)

	if fresh.Len() != repo.Len() {
		t.Fatalf("reloaded length = %d, want %d", fresh.Len(), repo.Len())
	}
	got, ok := fresh.Get(p.ID)
	if !ok || got.Title != "Durable" {
		t.Errorf("published post lost across reload: %+v ok=%v", got, ok)
	}
	if _, ok := fresh.Get("3"); ok {
		t.Error("deleted post came back after reload")
	}
}

func TestInitialize_MalformedPersistedData(t *testing.T) {
	store := testutil.TestStore(t)
	ctx := context.Background()
	if err := store.Write(ctx, content.PostsKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	repo := content.NewRepository(store, nil, nil)
	repo.Initialize(ctx)
	if repo.Len() != 3 {
		t.Errorf("got %d posts, want bundled defaults", repo.Len())
	}
}

func TestInitialize_EmptyPersistedListIgnored(t *testing.T) {
	store := testutil.TestStore(t)
	ctx := context.Background()
	if err := store.Write(ctx, content.PostsKey, []byte("[]")); err != nil {
		t.Fatal(err)
	}

	repo := content.NewRepository(store, nil, nil)
	repo.Initialize(ctx)
	if repo.Len() != 3 {
		t.Errorf("got %d posts, want bundled defaults over empty list", repo.Len())
	}
}

func TestPersist_WritesWholeList(t *testing.T) {
	store := testutil.TestStore(t)
	ctx := context.Background()

	repo := content.NewRepository(store, nil, nil)
	repo.Initialize(ctx)
	p := models.Draft{Title: "Wire Check", Excerpt: "e", Content: "c"}.Finalize()
	repo.Upsert(ctx, p)

	raw, ok, err := store.Read(ctx, content.PostsKey)
	if err != nil || !ok {
		t.Fatalf("read back: ok=%v err=%v", ok, err)
	}
	var persisted []models.Post
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatal(err)
	}
	if len(persisted) != repo.Len() || persisted[0].ID != p.ID {
		t.Errorf("persisted list out of sync: %d entries, first %q", len(persisted), persisted[0].ID)
	}
}

type publishRecorder struct {
	kinds []string
	ids   []string
}

func (r *publishRecorder) PublishPostEvent(kind, id string) {
	r.kinds = append(r.kinds, kind)
	r.ids = append(r.ids, id)
}

func TestEvents_PublishedOnMutation(t *testing.T) {
	rec := &publishRecorder{}
	repo := content.NewRepository(nil, rec, nil)
	repo.Initialize(context.Background())

	p := models.Draft{Title: "Evt", Excerpt: "e", Content: "c"}.Finalize()
	repo.Upsert(context.Background(), p)
	repo.Upsert(context.Background(), p)
	repo.Remove(context.Background(), p.ID)
	repo.Remove(context.Background(), p.ID)

	want := []string{"created", "updated", "deleted"}
	if len(rec.kinds) != len(want) {
		t.Fatalf("got events %v, want %v", rec.kinds, want)
	}
	for i := range want {
		if rec.kinds[i] != want[i] || rec.ids[i] != p.ID {
			t.Errorf("event %d = %s/%s, want %s/%s", i, rec.kinds[i], rec.ids[i], want[i], p.ID)
		}
	}
}

var _ content.BlobStore = (*kvstore.Store)(nil)
