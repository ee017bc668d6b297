package hh

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoadVacanciesIntegration(t *testing.T) {
	if os.Getenv("HH_INTEGRATION") != "1" {
		t.Skip("HH_INTEGRATION=1 must be set to run this test against api.hh.ru")
	}

	client, err := NewClient(Config{
		BaseURL:    os.Getenv("HH_BASE_URL"),
		Timeout:    15 * time.Second,
		MaxRetries: 2,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	area := 1
	items, err := client.LoadVacancies(ctx, "golang", SearchParams{
		MaxPages: 1,
		PerPage:  10,
		Area:     &area,
	})
	if err != nil {
		t.Fatalf("LoadVacancies: %v", err)
	}

	if len(items) == 0 {
		t.Log("HeadHunter search returned zero vacancies; check query or area")
		return
	}

	for i, item := range items {
		if i >= 5 {
			break
		}
		t.Logf("Result %d: %.120s", i+1, string(item))
	}
	t.Logf("HeadHunter search returned %d vacancies", len(items))
}
