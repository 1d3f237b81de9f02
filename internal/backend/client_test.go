package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rajservice12693/alankar/internal/model"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["emailId"] != "admin@example.com" {
			t.Errorf("expected emailId in request, got %v", req)
		}

		json.NewEncoder(w).Encode(map[string]string{"userName": "Rohit"})
	}))
	t.Cleanup(server.Close)

	client := New(server.URL)
	name, err := client.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if name != "Rohit" {
		t.Errorf("expected user name 'Rohit', got %q", name)
	}
}

func TestLoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	t.Cleanup(server.Close)

	client := New(server.URL)
	_, err := client.Login(context.Background(), "admin@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error for 401 login")
	}

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if be.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", be.Status)
	}
	if be.Message != "invalid credentials" {
		t.Errorf("expected backend message to be surfaced, got %q", be.Message)
	}
}

func TestErrorMessageFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL)
	err := client.AddCategory(context.Background(), "Ring")

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if be.Message != genericMessage {
		t.Errorf("expected generic fallback message, got %q", be.Message)
	}
}

func TestItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]model.Item{
			{ID: 1, ItemName: "Gold Ring", CategoryName: "Ring", Price: 100},
		})
	}))
	t.Cleanup(server.Close)

	items, err := New(server.URL).Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].ItemName != "Gold Ring" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestCategoriesUnwrapsData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []model.Category{
				{CategoryID: "1", CategoryName: "Ring", Materials: []model.Material{
					{MaterialID: "10", MaterialName: "Gold"},
				}},
			},
		})
	}))
	t.Cleanup(server.Close)

	categories, err := New(server.URL).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if len(categories[0].Materials) != 1 || categories[0].Materials[0].MaterialName != "Gold" {
		t.Errorf("expected embedded material, got %+v", categories[0])
	}
}

func TestAddCategoryRequires201(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 is not 201; the client must treat it as a failure.
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	if err := New(server.URL).AddCategory(context.Background(), "Ring"); err == nil {
		t.Error("expected error for non-201 response")
	}
}

func TestSaveItemMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/saveItems" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}

		var payload ItemPayload
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &payload); err != nil {
			t.Fatalf("decoding payload field: %v", err)
		}
		if payload.ItemName != "Gold Ring" || payload.Weight != 12.5 {
			t.Errorf("unexpected payload: %+v", payload)
		}

		files := r.MultipartForm.File["images"]
		if len(files) != 2 {
			t.Errorf("expected 2 image parts, got %d", len(files))
		}

		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	err := New(server.URL).SaveItem(context.Background(), ItemPayload{
		ItemName:   "Gold Ring",
		CategoryID: "1",
		MaterialID: "10",
		Weight:     12.5,
		Price:      45000,
	}, []ImageFile{
		{Name: "front.jpg", Reader: strings.NewReader("front-bytes")},
		{Name: "back.jpg", Reader: strings.NewReader("back-bytes")},
	})
	if err != nil {
		t.Fatalf("SaveItem: %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/item" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("itemId")
	}))
	t.Cleanup(server.Close)

	if err := New(server.URL).DeleteItem(context.Background(), "42"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if gotQuery != "42" {
		t.Errorf("expected itemId=42, got %q", gotQuery)
	}
}

func TestDashboardCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.DashboardCount{
			Total:         12,
			CategoryTotal: 3,
			MaterialList:  []string{"Gold", "Silver"},
			CategoryWise: []model.CategoryWise{
				{CategoryName: "Ring", CategoryCount: 5, CategoryMaterial: map[string]int{"Gold": 4}},
			},
		})
	}))
	t.Cleanup(server.Close)

	counts, err := New(server.URL).DashboardCount(context.Background())
	if err != nil {
		t.Fatalf("DashboardCount: %v", err)
	}
	if counts.Total != 12 || len(counts.CategoryWise) != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
	if counts.CategoryWise[0].CategoryMaterial["Gold"] != 4 {
		t.Errorf("expected per-material breakdown, got %+v", counts.CategoryWise[0])
	}
}
