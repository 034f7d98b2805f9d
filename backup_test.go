package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func seedBackup(t *testing.T, l *Ledger) {
	t.Helper()
	cat, _ := l.AddCategory("Grains")
	id, err := l.AddProduct(ProductInput{Name: "Wheat", Unit: "kg", CategoryID: &cat, CurrentStock: 40, MinStock: 10, Price: 0.8})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if _, err := l.AddTransaction(TransactionInput{ProductID: id, Type: StockOut, Quantity: 5, Note: "sold at market"}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
}

func TestBackup_ExportImportRoundTrip(t *testing.T) {
	l := newTestLedger(t, WithClock(tick()))
	seedBackup(t, l)

	before, err := l.ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}
	if before.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", before.Version, SchemaVersion)
	}
	if before.ExportedAt == "" {
		t.Error("exportedAt is empty")
	}

	var file bytes.Buffer
	if err := l.Export(&file); err != nil {
		t.Fatalf("Export: %v", err)
	}

	// Disturb the state, then restore the snapshot.
	if _, err := l.AddProduct(ProductInput{Name: "Intruder", CurrentStock: 1}); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if err := l.Import(&file); err != nil {
		t.Fatalf("Import: %v", err)
	}

	after, err := l.ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}
	// Entity tables must be byte-for-byte equivalent, ids included.
	wantJSON := mustJSON(t, before.Products, before.Transactions, before.Categories)
	gotJSON := mustJSON(t, after.Products, after.Transactions, after.Categories)
	if wantJSON != gotJSON {
		t.Errorf("tables differ after restore:\nbefore: %s\nafter:  %s", wantJSON, gotJSON)
	}
}

func mustJSON(t *testing.T, vs ...any) string {
	t.Helper()
	var b strings.Builder
	for _, v := range vs {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestImport_IsDestructiveFullReplace(t *testing.T) {
	l := newTestLedger(t)
	seedBackup(t, l)

	// An empty-but-present snapshot clears everything.
	snapshot := `{"version":2,"exportedAt":"2024-06-01T00:00:00Z","products":[],"transactions":[]}`
	if err := l.Import(strings.NewReader(snapshot)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	products, _ := l.Products()
	if len(products) != 0 {
		t.Errorf("got %d products after restoring an empty snapshot, want 0", len(products))
	}
	txs, _ := l.Transactions(TransactionFilter{})
	if len(txs) != 0 {
		t.Errorf("got %d transactions after restoring an empty snapshot, want 0", len(txs))
	}
	cats, _ := l.Categories()
	if len(cats) != 0 {
		t.Errorf("got %d categories after restoring an empty snapshot, want 0", len(cats))
	}
}

func TestImport_PreservesOriginalIDs(t *testing.T) {
	l := newTestLedger(t)
	snapshot := `{
	  "version": 2,
	  "exportedAt": "2024-06-01T00:00:00Z",
	  "products": [{"id": 7, "name": "Wheat", "unit": "kg", "currentStock": 4, "minStock": 1, "price": 2,
	    "createdAt": "2024-05-01T10:00:00Z", "updatedAt": "2024-05-02T10:00:00Z"}],
	  "transactions": [{"id": 31, "productId": 7, "productName": "Wheat", "type": "IN", "quantity": 4,
	    "pricePerUnit": 2, "totalValue": 8, "date": "2024-05-02T10:00:00Z", "createdAt": "2024-05-02T10:00:00Z"}],
	  "categories": [{"id": 3, "name": "Grains"}]
	}`
	if err := l.Import(strings.NewReader(snapshot)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if p, err := l.Product(7); err != nil || p.Name != "Wheat" {
		t.Errorf("Product(7) = %+v, %v", p, err)
	}
	txs, _ := l.Transactions(TransactionFilter{ProductID: 7})
	if len(txs) != 1 || txs[0].ID != 31 {
		t.Errorf("transactions = %+v, want the one with id 31", txs)
	}
	cats, _ := l.Categories()
	if len(cats) != 1 || cats[0].ID != 3 {
		t.Errorf("categories = %+v, want the one with id 3", cats)
	}
}

func TestImport_RejectsMalformedPayloads(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"not json", "this is no backup"},
		{"missing products", `{"version":2,"transactions":[]}`},
		{"missing transactions", `{"version":2,"products":[]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t)
			seedBackup(t, l)

			err := l.Import(strings.NewReader(tc.payload))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			// A rejected import must leave the previous state untouched.
			products, _ := l.Products()
			if len(products) != 1 {
				t.Errorf("got %d products after rejected import, want 1", len(products))
			}
		})
	}
}

func TestImport_CategoriesDefaultToEmpty(t *testing.T) {
	l := newTestLedger(t)
	seedBackup(t, l)

	snapshot := `{"version":2,"products":[],"transactions":[]}`
	if err := l.Import(strings.NewReader(snapshot)); err != nil {
		t.Fatalf("Import without categories: %v", err)
	}
	cats, _ := l.Categories()
	if len(cats) != 0 {
		t.Errorf("got %d categories, want 0", len(cats))
	}
}
