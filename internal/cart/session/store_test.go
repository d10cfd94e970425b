package session

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"minimart/internal/cart/domain"
)

func roundTrip(t *testing.T, store *Store, cart domain.Cart) domain.Cart {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.Save(w, r, cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	return store.Load(next)
}

func TestLoadWithoutCookie(t *testing.T) {
	store := NewStore("test-secret")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	cart := store.Load(r)
	if !cart.Empty() {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := NewStore("test-secret")

	want := domain.Cart{"1": 2, "3": 5}
	got := roundTrip(t, store, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestClearReplacesWithEmptyMap(t *testing.T) {
	store := NewStore("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.Save(w, r, domain.Cart{"1": 2}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := httptest.NewRequest(http.MethodPost, "/", nil)
	for _, c := range w.Result().Cookies() {
		second.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	if err := store.Clear(w2, second); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	third := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w2.Result().Cookies() {
		third.AddCookie(c)
	}
	if cart := store.Load(third); !cart.Empty() {
		t.Fatalf("expected cleared cart, got %+v", cart)
	}
}

func TestTamperedCookieYieldsEmptyCart(t *testing.T) {
	store := NewStore("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.Save(w, r, domain.Cart{"1": 2}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		c.Value = c.Value + "tampered"
		next.AddCookie(c)
	}
	if cart := store.Load(next); !cart.Empty() {
		t.Fatalf("expected empty cart for tampered cookie, got %+v", cart)
	}
}
