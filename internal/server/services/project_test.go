package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fahmiks/portfolio-api/internal/common"
	"github.com/fahmiks/portfolio-api/internal/server/models"
)

func TestProjectCreate_UniqueSlugCounter(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeProjectsRepo{existing: map[string]bool{"shop-api": true, "shop-api-1": true}}
	store := &fakeObjectStore{}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, store))

	_, err := svc.Create(context.Background(), ProjectInput{
		Title:      "Shop API",
		CategoryID: "c-1",
		SkillIDs:   []string{"s-1"},
		Image:      validImage(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if repo.created.Slug != "shop-api-2" {
		t.Fatalf("want slug shop-api-2, got %q", repo.created.Slug)
	}
	if !repo.replaceCalled || len(repo.skillsSet) != 1 {
		t.Fatalf("skill associations not written: %+v", repo.skillsSet)
	}
}

func TestProjectCreate_InvalidImageRejectedBeforeUpload(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeProjectsRepo{}
	store := &fakeObjectStore{}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, store))

	_, err := svc.Create(context.Background(), ProjectInput{
		Title: "Shop API",
		Image: &assetsUploadGIF,
	})
	if !errors.Is(err, common.ErrInvalidAsset) {
		t.Fatalf("want ErrInvalidAsset, got %v", err)
	}
	if len(store.calls) != 0 {
		t.Fatalf("object store touched: %v", store.calls)
	}
	if repo.created != nil {
		t.Fatal("row created despite invalid image")
	}
}

func TestProjectCreate_TxFailureCleansUpUpload(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeProjectsRepo{createErr: errors.New("db down")}
	store := &fakeObjectStore{}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, store))

	_, err := svc.Create(context.Background(), ProjectInput{Title: "Shop API", Image: validImage()})
	if err == nil {
		t.Fatal("want error")
	}
	if len(store.calls) != 2 || !strings.HasPrefix(store.calls[1], "delete:") {
		t.Fatalf("uploaded object not cleaned up: %v", store.calls)
	}
}

func TestProjectUpdate_SlugKeptWhenTitleUnchanged(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	existing := &models.Project{ID: "p-1", Title: "Shop API", Slug: "shop-api"}
	repo := &fakeProjectsRepo{bySlug: map[string]*models.Project{"shop-api": existing}}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, &fakeObjectStore{}))

	got, err := svc.Update(context.Background(), "shop-api", ProjectInput{Title: "Shop API", Description: "new"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Slug != "shop-api" {
		t.Fatalf("slug changed to %q", got.Slug)
	}
}

func TestProjectUpdate_ImageReplaceDeletesOldFirst(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	existing := &models.Project{
		ID: "p-1", Title: "Shop API", Slug: "shop-api",
		Image: models.AssetRef{URL: "https://cdn/old.png", Key: "portfolio/project/old.png"},
	}
	repo := &fakeProjectsRepo{bySlug: map[string]*models.Project{"shop-api": existing}}
	store := &fakeObjectStore{}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, store))

	_, err := svc.Update(context.Background(), "shop-api", ProjectInput{Title: "Shop API", Image: validImage()})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	want := []string{"delete:portfolio/project/old.png", "upload:project"}
	if len(store.calls) != 2 || store.calls[0] != want[0] || store.calls[1] != want[1] {
		t.Fatalf("unexpected call order: %v", store.calls)
	}
}

func TestProjectDelete_AssetBeforeRow(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	existing := &models.Project{
		ID: "p-1", Slug: "shop-api",
		Image: models.AssetRef{URL: "https://cdn/img.png", Key: "portfolio/project/img.png"},
	}
	repo := &fakeProjectsRepo{bySlug: map[string]*models.Project{"shop-api": existing}}
	store := &fakeObjectStore{}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, store))

	if err := svc.Delete(context.Background(), "shop-api"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if repo.deletedSlug != "shop-api" {
		t.Fatal("row not deleted")
	}
	if len(store.calls) != 1 || store.calls[0] != "delete:portfolio/project/img.png" {
		t.Fatalf("asset not deleted first: %v", store.calls)
	}
}

func TestProjectDelete_StorageFailureKeepsRow(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	existing := &models.Project{
		ID: "p-1", Slug: "shop-api",
		Image: models.AssetRef{URL: "https://cdn/img.png", Key: "portfolio/project/img.png"},
	}
	repo := &fakeProjectsRepo{bySlug: map[string]*models.Project{"shop-api": existing}}
	store := &fakeObjectStore{deleteErr: errors.New("s3 down")}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, store))

	err := svc.Delete(context.Background(), "shop-api")
	if !errors.Is(err, common.ErrStorageUnavailable) {
		t.Fatalf("want ErrStorageUnavailable, got %v", err)
	}
	if repo.deletedSlug != "" {
		t.Fatal("row deleted despite storage failure")
	}
}

func TestProjectList_PaginationMetadata(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeProjectsRepo{countOut: 14, listOut: make([]models.Project, 9)}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, &fakeObjectStore{}))

	page, err := svc.List(context.Background(), 1, 9, "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Total != 14 || page.TotalPages != 2 || page.Page != 1 || page.Limit != 9 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
}

func TestProjectList_DefaultsPageAndLimit(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeProjectsRepo{countOut: 25}
	svc := NewProjectService(db, &fakeRepoManager{projects: repo}, testLifecycle(t, &fakeObjectStore{}))

	page, err := svc.List(context.Background(), 0, 0, "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 || page.TotalPages != 3 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
}
