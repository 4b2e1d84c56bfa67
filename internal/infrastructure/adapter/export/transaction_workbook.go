package export

import (
	"fmt"
	"io"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding exported transactions
const SheetName = "Transactions"

// ContentType is the media type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// amountFormat is the built-in "0.00" number format
const amountFormat = 2

type column struct {
	title string
	width float64
	value func(t *entity.Transaction) any
	money bool
}

var transactionColumns = []column{
	{title: "ID", width: 8, value: func(t *entity.Transaction) any { return t.ID }},
	{title: "Type", width: 10, value: func(t *entity.Transaction) any { return t.Type.String() }},
	{title: "Amount", width: 14, money: true, value: func(t *entity.Transaction) any { return t.Amount }},
	{title: "Currency", width: 10, value: func(t *entity.Transaction) any { return t.Currency }},
	{title: "Account", width: 18, value: func(t *entity.Transaction) any { return t.Account }},
	{title: "Project", width: 15, value: func(t *entity.Transaction) any { return t.Project }},
	{title: "Category", width: 15, value: func(t *entity.Transaction) any { return t.Category }},
	{title: "Subcategory", width: 15, value: func(t *entity.Transaction) any { return t.Subcategory }},
	{title: "Name", width: 20, value: func(t *entity.Transaction) any { return t.Name }},
	{title: "Store", width: 20, value: func(t *entity.Transaction) any { return t.Store }},
	{title: "Note", width: 30, value: func(t *entity.Transaction) any { return t.Note }},
	{title: "Tags", width: 20, value: func(t *entity.Transaction) any { return t.Tags }},
	{title: "Date", width: 12, value: func(t *entity.Transaction) any { return t.Date }},
	{title: "Time", width: 8, value: func(t *entity.Transaction) any { return t.Time }},
	{title: "Fee", width: 12, money: true, value: func(t *entity.Transaction) any { return optional(t.Fee) }},
	{title: "Fee name", width: 15, value: func(t *entity.Transaction) any { return t.FeeName }},
	{title: "Bonus", width: 12, money: true, value: func(t *entity.Transaction) any { return optional(t.Bonus) }},
	{title: "Bonus name", width: 15, value: func(t *entity.Transaction) any { return t.BonusName }},
	{title: "Created at", width: 20, value: func(t *entity.Transaction) any { return t.CreatedAt.UTC().Format(time.DateTime) }},
}

func optional(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}

// FileName returns the download name of an export produced at now
func FileName(now time.Time) string {
	return fmt.Sprintf("transactions_%s.xlsx", now.UTC().Format("20060102"))
}

// WriteTransactions streams the transactions as an xlsx workbook with one
// header row followed by one row per transaction, in the given order.
func WriteTransactions(w io.Writer, txs []*entity.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("opening stream writer: %w", err)
	}
	for i, col := range transactionColumns {
		if err := sw.SetColWidth(i+1, i+1, col.width); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	header := make([]any, len(transactionColumns))
	for i, col := range transactionColumns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: col.title}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for r, tx := range txs {
		row := make([]any, len(transactionColumns))
		for i, col := range transactionColumns {
			v := col.value(tx)
			if d, ok := v.(decimal.Decimal); ok {
				v = d.InexactFloat64()
			}
			if col.money && v != nil {
				row[i] = excelize.Cell{StyleID: moneyStyle, Value: v}
				continue
			}
			row[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("writing row %d: %w", r+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
