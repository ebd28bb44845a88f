package oura

import (
	"context"
	"testing"
)

func TestDailyActivityService_List_SandboxTwoPages(t *testing.T) {
	fixture := newSandboxFixture(t)
	client := fixture.client()

	docs, err := client.DailyActivity.List(context.Background(), &ListOptions{
		StartDate: "2023-01-01",
		EndDate:   "2023-01-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := fixture.requests.Load(); got != 2 {
		t.Errorf("expected 2 round trips, got %d", got)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents across both pages, got %d", len(docs))
	}
	for i, wantID := range []string{"act-1", "act-2", "act-3"} {
		if docs[i].ID != wantID {
			t.Errorf("expected document %d to be %s, got %s", i, wantID, docs[i].ID)
		}
	}
	if docs[0].Steps != 9876 {
		t.Errorf("expected 9876 steps on first document, got %d", docs[0].Steps)
	}
	if docs[2].Score == nil || *docs[2].Score != 92 {
		t.Errorf("expected score 92 on last document, got %v", docs[2].Score)
	}
}

func TestDailyActivityService_GetByID(t *testing.T) {
	fixture := newSandboxFixture(t)
	client := fixture.client()

	doc, err := client.DailyActivity.GetByID(context.Background(), "act-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := fixture.requests.Load(); got != 1 {
		t.Errorf("expected exactly 1 round trip for a singleton fetch, got %d", got)
	}
	if doc.ID != "act-1" || doc.Day != "2023-01-02" {
		t.Errorf("unexpected document: %+v", doc)
	}
	if doc.Contributors == nil || doc.Contributors.StayActive == nil || *doc.Contributors.StayActive != 90 {
		t.Errorf("unexpected contributors: %+v", doc.Contributors)
	}
	if doc.Met == nil || len(doc.Met.Items) != 3 {
		t.Fatalf("expected 3 met samples, got %+v", doc.Met)
	}
	if doc.Met.Items[1] != nil {
		t.Errorf("expected null met sample to decode as nil, got %v", *doc.Met.Items[1])
	}
}
