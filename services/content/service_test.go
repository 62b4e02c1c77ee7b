package content

import (
	"context"
	"strings"
	"testing"

	"sokohub/models"
	"sokohub/utils"
)

func tagID(c byte) string { return strings.Repeat(string(c), 20) }

func authorID() string { return strings.Repeat("u", 28) }

func seedPost(repo *fakePostRepo, id, title string, tags ...string) {
	repo.docs = append(repo.docs, models.Post{
		ID:       id,
		Title:    title,
		Tags:     tags,
		AuthorID: authorID(),
	})
}

func TestCreatePost(t *testing.T) {
	svc, repo, _ := newTestService()
	p := &models.Post{
		Title:     "Market day",
		Timestamp: 1700000000,
		AuthorID:  authorID(),
	}
	id, err := svc.CreatePost(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utils.ValidDocumentID(id) {
		t.Errorf("assigned id %q is not a valid document id", id)
	}
	if len(repo.docs) != 1 {
		t.Fatalf("expected 1 stored doc, got %d", len(repo.docs))
	}
}

func TestCreatePostRejectsInvalid(t *testing.T) {
	svc, repo, _ := newTestService()
	tests := []models.Post{
		{AuthorID: authorID()},                                    // no title
		{Title: "x", AuthorID: "short"},                           // bad author id
		{Title: "x", AuthorID: authorID(), Timestamp: -5},         // negative timestamp
		{Title: "x", AuthorID: authorID(), Tags: []string{"bad"}}, // malformed tag
	}
	for i := range tests {
		if _, err := svc.CreatePost(context.Background(), &tests[i]); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
	if len(repo.docs) != 0 {
		t.Error("invalid record reached the store")
	}
}

func TestSearchPostsByTags(t *testing.T) {
	svc, repo, _ := newTestService()
	t1, t2 := tagID('1'), tagID('2')
	seedPost(repo, tagID('a'), "Alpha", t1)
	seedPost(repo, tagID('b'), "Beta", t2)

	got, err := svc.SearchPosts(context.Background(), models.PostCriteria{Tags: []string{t1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Alpha" {
		t.Fatalf("got %+v", got)
	}

	// No criteria means no constraint.
	all, err := svc.SearchPosts(context.Background(), models.PostCriteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}
}

func TestPurgePost(t *testing.T) {
	svc, repo, md := newTestService()
	id := tagID('p')
	seedPost(repo, id, "Purge Me")

	var deletedFolder string
	md.deleteAllFn = func(_ context.Context, folder string) (int, []string, error) {
		deletedFolder = folder
		return 1, nil, nil
	}

	result, err := svc.PurgePost(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.DocumentDeleted || result.FilesDeleted != 1 {
		t.Errorf("result = %+v", result)
	}
	if deletedFolder != "post/"+id+"/" {
		t.Errorf("deleted folder = %q", deletedFolder)
	}
}

func TestSetFeaturedImageNaming(t *testing.T) {
	svc, _, md := newTestService()
	id := tagID('f')

	var remote string
	md.uploadFn = func(_ context.Context, folder, localPath, remoteName string) (string, error) {
		remote = remoteName
		return "https://signed.example.com/" + folder + remoteName, nil
	}

	if _, err := svc.SetFeaturedImage(context.Background(), id, "cover.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remote != "cover-feat.jpg" {
		t.Errorf("remote name = %q", remote)
	}
}
