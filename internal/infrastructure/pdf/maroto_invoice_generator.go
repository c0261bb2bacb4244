// Package pdf renders the printable A4 document for invoices and quotations,
// matching the web preview design. When the company has a logo on disk it is
// also tiled as a faded page background.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo / company name  │  GSTIN, STATE, CODE, PAN    │
//	│  TITLE: TAX INVOICE / TAX PROPOSAL                          │
//	│  CLIENT BLOCK (left)          │  Date + Reference (right)   │
//	│  SCOPE OF WORK                                              │
//	│  TABLE: Sl | Description | Duration | Qty | Unit | Total    │
//	│  TOTALS: GST / GRAND TOTAL / Advance Paid / BALANCE DUE     │
//	│  AMOUNT IN WORDS banner                                     │
//	│  PAYMENT TERMS | DELIVERY TERMS | VALIDITY                  │
//	│  FOOTER: computer-generated disclaimer + date               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/resonira/invoice-api/internal/application/billing"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/money"
)

// ── Color palette (matches the SPA preview) ───────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 30, Green: 58, Blue: 138}   // dark blue
	colorMuted    = &props.Color{Red: 107, Green: 114, Blue: 128} // gray
	colorInk      = &props.Color{Red: 51, Green: 51, Blue: 51}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRowAlt   = &props.Color{Red: 248, Green: 250, Blue: 252} // zebra stripe
	colorWordsBg  = &props.Color{Red: 254, Green: 243, Blue: 199} // amber banner
	colorWordsInk = &props.Color{Red: 146, Green: 64, Blue: 14}
	colorGreen    = &props.Color{Red: 5, Green: 150, Blue: 105}   // advance paid
	colorRed      = &props.Color{Red: 220, Green: 38, Blue: 38}   // balance due
	colorFooter   = &props.Color{Red: 156, Green: 163, Blue: 175}
)

var _ appbilling.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF renders the document and returns its bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	company *entity.CompanyInfo,
) ([]byte, error) {
	title := "TAX INVOICE"
	if inv.IsQuotation() {
		title = "TAX PROPOSAL"
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(company.Name, "RESONIRA TECHNOLOGIES"), true)

	// Faded logo watermark behind the page content. A logo that fails to
	// decode renders the page without one.
	if logo := company.Logo; logo != "" && fileExists(logo) {
		if wm, err := buildWatermark(logo); err == nil {
			defer os.Remove(wm)
			if wmBytes, err := os.ReadFile(wm); err == nil {
				builder = builder.WithBackgroundImage(wmBytes, extension.Png)
			}
		}
	}

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(company))
	m.AddRows(titleRow(title))
	m.AddRows(clientMetaRow(inv))
	m.AddRows(scopeOfWorkRow())

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.LineItems) {
		m.AddRows(r)
	}

	m.AddRows(row.New(4))
	for _, r := range totalsRows(inv) {
		m.AddRows(r)
	}

	m.AddRows(row.New(4))
	m.AddRows(amountInWordsRow(inv))

	m.AddRows(row.New(6))
	for _, r := range termsRows(inv) {
		m.AddRows(r)
	}

	m.AddRows(row.New(8))
	m.AddRows(footerRows(inv)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: logo or company name on the left, tax identifiers on the right.
func headerRow(company *entity.CompanyInfo) core.Row {
	left := col.New(7)
	if logo := company.Logo; logo != "" && fileExists(logo) {
		left.Add(image.NewFromFile(logo, props.Rect{Percent: 80, Top: 1}))
	} else {
		left.Add(text.New(nonEmpty(company.Name, "RESONIRA TECHNOLOGIES"), props.Text{
			Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 4,
		}))
	}

	kv := func(label, value string, top float64) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Size: 8, Color: colorMuted, Top: top}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: top,
			}),
		}
	}

	right := col.New(5)
	right.Add(kv("GSTIN/UIN:", company.GSTIN, 1)...)
	right.Add(kv("STATE:", company.State, 6)...)
	right.Add(kv("STATE CODE:", company.StateCode, 11)...)
	right.Add(kv("PAN:", company.PAN, 16)...)

	return row.New(22).Add(left, right)
}

// titleRow: document type centered in primary color.
func titleRow(title string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center,
			Color: colorPrimary, Top: 3,
		}),
	))
}

// clientMetaRow: billed-party contact block (left) and date + reference (right).
func clientMetaRow(inv *entity.Invoice) core.Row {
	forLabel := "Invoice For: "
	refLabel := "Invoice No: "
	if inv.IsQuotation() {
		forLabel = "Quotation For: "
		refLabel = "Quotation No: "
	}

	line := func(label, value string, top float64, bold bool) []core.Component {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return []core.Component{
			text.New(label, props.Text{Size: 8, Color: colorMuted, Top: top}),
			text.New(value, props.Text{Size: 8, Style: style, Top: top, Left: 22}),
		}
	}

	left := col.New(7)
	left.Add(line(forLabel, inv.Client.CompanyName, 0, true)...)
	left.Add(line("Name/Attn.: ", inv.Client.AttentionTo, 5, false)...)
	left.Add(line("Address: ", inv.Client.Address, 10, false)...)
	left.Add(line("Tel: ", inv.Client.Phone, 15, false)...)
	left.Add(line("Email: ", inv.Client.Email, 20, false)...)
	left.Add(line("GST No: ", inv.Client.GSTNo, 25, false)...)

	right := col.New(5)
	right.Add(
		text.New("Date:", props.Text{Size: 8, Color: colorMuted, Top: 0}),
		text.New(formatDisplayDate(inv.Date), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 0,
		}),
		text.New(refLabel, props.Text{Size: 8, Color: colorMuted, Top: 5}),
		text.New(inv.ReferenceNumber, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 5,
		}),
	)

	return row.New(32).Add(left, right)
}

func scopeOfWorkRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("SCOPE OF WORK", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
	))
}

// tableHeaderRow: column captions over the primary-color band.
func tableHeaderRow() core.Row {
	h := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h(1, "Sl.", align.Center),
		h(4, "Description", align.Left),
		h(2, "Duration", align.Center),
		h(1, "Qty", align.Center),
		h(2, "Unit Price (INR)", align.Right),
		h(2, "Total (INR)", align.Right),
	)
}

// tableItemRows: one row per line item, zebra striped, height stretched to fit
// long descriptions.
func tableItemRows(items []entity.LineItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i, item := range items {
		r := row.New(itemRowHeight(item.Description))
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorRowAlt})
		}
		r.Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorInk},
			)),
			col.New(4).Add(text.New(
				item.Description,
				props.Text{Size: 8, Top: 2, Left: 1, Right: 1, Color: colorInk},
			)),
			col.New(2).Add(text.New(
				item.Duration,
				props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorInk},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorInk},
			)),
			col.New(2).Add(text.New(
				money.FormatINR(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 2, Right: 1, Color: colorInk},
			)),
			col.New(2).Add(text.New(
				money.FormatINR(item.Total),
				props.Text{Size: 8, Align: align.Right, Top: 2, Right: 1, Color: colorInk},
			)),
		)
		rows = append(rows, r)
	}
	return rows
}

// totalsRows: right-aligned totals. Advance Paid only appears when positive,
// rendered in green with a leading minus as on the preview.
func totalsRows(inv *entity.Invoice) []core.Row {
	entry := func(label, value string, labelColor, valueColor *props.Color, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(7),
			col.New(3).Add(text.New(label, props.Text{
				Size: 9, Style: style, Align: align.Right, Right: 2, Color: labelColor,
			})),
			col.New(2).Add(text.New(value, props.Text{
				Size: 9, Style: style, Align: align.Right, Right: 1, Color: valueColor,
			})),
		)
	}

	rows := []core.Row{
		entry(fmt.Sprintf("GST (%d%%):", inv.GSTRate),
			money.FormatINR(inv.GSTAmount), colorMuted, colorPrimary, false),
		entry("GRAND TOTAL",
			money.FormatINR(inv.GrandTotal), colorPrimary, colorPrimary, true),
	}
	if inv.AdvancePayment.IsPositive() {
		rows = append(rows, entry("Advance Paid",
			"- "+money.FormatINR(inv.AdvancePayment), colorGreen, colorGreen, false))
	}
	rows = append(rows, entry("BALANCE DUE",
		money.FormatINR(inv.BalanceDue), colorRed, colorRed, true))
	return rows
}

// amountInWordsRow: italic banner on the amber background.
func amountInWordsRow(inv *entity.Invoice) core.Row {
	return row.New(10).WithStyle(&props.Cell{BackgroundColor: colorWordsBg}).Add(
		col.New(12).Add(text.New(inv.AmountInWords, props.Text{
			Size: 10, Style: fontstyle.Italic, Color: colorWordsInk, Top: 3, Left: 3,
		})),
	)
}

// termsRows: payment and delivery terms side by side, then the validity note.
func termsRows(inv *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(6).Add(text.New("PAYMENT TERMS", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			})),
			col.New(6).Add(text.New("DELIVERY TERMS", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			})),
		),
		row.New(12).Add(
			col.New(6).Add(text.New(inv.PaymentTerms, props.Text{
				Size: 9, Color: colorInk, Top: 1, Right: 4,
			})),
			col.New(6).Add(text.New(inv.DeliveryTerms, props.Text{
				Size: 9, Color: colorInk, Top: 1, Right: 4,
			})),
		),
	}

	if inv.ValidityDate != "" {
		rows = append(rows,
			row.New(6).Add(col.New(12).Add(text.New("VALIDITY", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}))),
			row.New(6).Add(col.New(12).Add(text.New(
				"The above offer is valid till "+formatDisplayDate(inv.ValidityDate),
				props.Text{Size: 9, Color: colorInk, Top: 1},
			))),
		)
	}
	return rows
}

// footerRows: computer-generated disclaimer and the document date, centered.
func footerRows(inv *entity.Invoice) []core.Row {
	return []core.Row{
		row.New(5).Add(col.New(12).Add(text.New(
			"This is a computer generated document and no signature is required.",
			props.Text{Size: 8, Align: align.Center, Color: colorFooter, Top: 1},
		))),
		row.New(5).Add(col.New(12).Add(text.New(
			"Date: "+formatDisplayDate(inv.Date),
			props.Text{Size: 8, Align: align.Center, Color: colorFooter, Top: 1},
		))),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// itemRowHeight stretches the row when a description wraps over multiple lines.
// The description column fits roughly 40 characters per line at 8pt.
func itemRowHeight(description string) float64 {
	const charsPerLine = 40
	lines := 1 + len(description)/charsPerLine
	height := float64(lines)*4 + 3
	if height < 8 {
		return 8
	}
	return height
}

// formatDisplayDate renders ISO dates as "02 Jan 2006" the way the preview
// shows them. Unparseable values pass through untouched.
func formatDisplayDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return s
}
