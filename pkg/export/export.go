// Package export writes the catalog and receipts as xlsx workbooks.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
)

const (
	SheetSizes       = "tamanosPizza"
	SheetIngredients = "ingredientes"
	SheetReceipts    = "pedidos"
)

var catalogHeader = []any{"value", "nombre", "precio"}

// Catalog writes one sheet per catalog list.
func Catalog(w io.Writer, cat catalog.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSizes); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetIngredients); err != nil {
		return fmt.Errorf("export: new sheet: %w", err)
	}
	if err := writeItems(f, SheetSizes, cat.Sizes); err != nil {
		return err
	}
	if err := writeItems(f, SheetIngredients, cat.Ingredients); err != nil {
		return err
	}
	return write(f, w)
}

// Receipts writes one row per receipt. Customer columns follow fields, and
// ingredients are joined by ", ".
func Receipts(w io.Writer, receipts []order.Receipt, fields []order.Field) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetReceipts); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetReceipts)
	if err != nil {
		return fmt.Errorf("export: stream writer: %w", err)
	}

	header := []any{"id", "createdAt"}
	for _, field := range fields {
		header = append(header, field.Name)
	}
	header = append(header, order.SizeField, "ingredientes", "total")
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for i, receipt := range receipts {
		row := []any{receipt.ID, receipt.CreatedAt.Format("2006-01-02 15:04:05")}
		for _, field := range fields {
			row = append(row, receipt.Customer[field.Name])
		}
		names := make([]string, 0, len(receipt.Ingredients))
		for _, line := range receipt.Ingredients {
			names = append(names, line.Name)
		}
		row = append(row, receipt.Size.Name, strings.Join(names, ", "), receipt.Total.Float())

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("export: row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return write(f, w)
}

// ReadCatalog parses a workbook produced by Catalog. Rows with an empty value
// are skipped.
func ReadCatalog(r io.Reader) (catalog.Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("export: open workbook: %w", err)
	}
	defer f.Close()

	sizes, err := readItems(f, SheetSizes)
	if err != nil {
		return catalog.Catalog{}, err
	}
	ingredients, err := readItems(f, SheetIngredients)
	if err != nil {
		return catalog.Catalog{}, err
	}
	cat := catalog.Catalog{Sizes: sizes, Ingredients: ingredients}
	if err := cat.Validate(); err != nil {
		return catalog.Catalog{}, err
	}
	return cat, nil
}

func writeItems(f *excelize.File, sheet string, items []catalog.Item) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("export: stream writer: %w", err)
	}
	if err := sw.SetRow("A1", catalogHeader); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}
	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []any{item.Value, item.Name, item.Price.String()}); err != nil {
			return fmt.Errorf("export: %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("export: flush %s: %w", sheet, err)
	}
	return nil
}

func readItems(f *excelize.File, sheet string) ([]catalog.Item, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("export: read %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	columns := make(map[string]int, len(rows[0]))
	for idx, name := range rows[0] {
		columns[strings.TrimSpace(name)] = idx
	}
	for _, name := range []string{"value", "nombre", "precio"} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("export: %s: missing column %q", sheet, name)
		}
	}

	var items []catalog.Item
	var errs []error
	for i, row := range rows[1:] {
		value := cellAt(row, columns["value"])
		if value == "" {
			continue
		}
		price, err := catalog.ParsePrice(cellAt(row, columns["precio"]))
		if err != nil {
			errs = append(errs, fmt.Errorf("export: %s row %d: %w", sheet, i+2, err))
			continue
		}
		items = append(items, catalog.Item{Value: value, Name: cellAt(row, columns["nombre"]), Price: price})
	}
	return items, errors.Join(errs...)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func write(f *excelize.File, w io.Writer) error {
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
