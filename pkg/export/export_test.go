package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/testsupport"
)

func TestCatalog_WritesReadableWorkbook(t *testing.T) {
	cat := testsupport.Catalog()

	var buf bytes.Buffer
	if err := Catalog(&buf, cat); err != nil {
		t.Fatalf("export catalog: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	if diff := cmp.Diff([]string{SheetSizes, SheetIngredients}, wb.GetSheetList()); diff != "" {
		t.Fatalf("sheets mismatch (-want +got):\n%s", diff)
	}

	got, err := ReadCatalog(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if diff := cmp.Diff(cat, got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestReceipts_WritesOneRowPerReceipt(t *testing.T) {
	cat := testsupport.Catalog()
	fields := order.DefaultFields()
	receipt, err := order.Quote(testsupport.ValidForm(), fields, cat)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	receipt.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var buf bytes.Buffer
	if err := Receipts(&buf, []order.Receipt{receipt}, fields); err != nil {
		t.Fatalf("export receipts: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetReceipts)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	wantHeader := []string{"id", "createdAt", "nombre", "direccion", "telefono", "email", "pizzaSize", "ingredientes", "total"}
	if diff := cmp.Diff(wantHeader, rows[0]); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	row := rows[1]
	if row[0] != receipt.ID || row[1] != "2026-01-02 03:04:05" || row[2] != "Ada" {
		t.Fatalf("unexpected row prefix: %v", row)
	}
	if row[6] != "Mediana" || row[7] != "Queso" {
		t.Fatalf("unexpected order columns: %v", row)
	}
}

func TestReadCatalog_RejectsBadPrice(t *testing.T) {
	cat := catalog.Catalog{Sizes: []catalog.Item{{Value: "s", Name: "S", Price: 100}}}
	var buf bytes.Buffer
	if err := Catalog(&buf, cat); err != nil {
		t.Fatalf("export catalog: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.SetCellValue(SheetSizes, "C2", "caro"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	var edited bytes.Buffer
	if _, err := f.WriteTo(&edited); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	if _, err := ReadCatalog(&edited); err == nil {
		t.Fatal("expected price error")
	}
}
