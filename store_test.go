package inventory

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l := NewLedger(store)
	id, err := l.AddProduct(ProductInput{Name: "Honey", CurrentStock: 12, Price: 7})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening runs the migrations again; they must be idempotent and the
	// data must survive.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	l = NewLedger(store)
	p, err := l.Product(id)
	if err != nil {
		t.Fatalf("Product after reopen: %v", err)
	}
	if p.Name != "Honey" || p.CurrentStock != 12 {
		t.Errorf("product after reopen = %+v", p)
	}
}

func TestAtomic_RollsBackOnError(t *testing.T) {
	l := newTestLedger(t)

	boom := errors.New("boom")
	err := l.store.Atomic(func(tx *gorm.DB) error {
		if err := tx.Create(&Category{Name: "Doomed"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Atomic returned %v, want the inner error", err)
	}
	cats, _ := l.Categories()
	if len(cats) != 0 {
		t.Errorf("got %d categories after rollback, want 0", len(cats))
	}
}
