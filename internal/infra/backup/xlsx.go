package backup

import (
	"io"
	"math"
	"strconv"
	"strings"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	SheetInventory = "Inventory"
	SheetBookings  = "Bookings"
	SheetServices  = "Services"
)

var (
	inventoryHeader = []string{"ID", "Name", "Category", "Description", "PricePerDay", "Quantity", "CreatedAt"}
	bookingsHeader  = []string{"ID", "Customer", "Phone", "Email", "EventType", "Date", "ReturnDate", "Location", "Status", "Total", "Items", "Notes", "CreatedAt"}
	servicesHeader  = []string{"ID", "Name", "Description", "Price", "Featured"}
)

// ExportXLSX writes inventory, bookings and packages to one sheet each.
// Images are not exported.
func ExportXLSX(s *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetInventory); err != nil {
		return nil, errs.Wrap(err, "failed to name inventory sheet")
	}
	for _, name := range []string{SheetBookings, SheetServices} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errs.Wrap(err, "failed to create sheet "+name)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create header style")
	}

	inv := make([][]any, 0, len(s.Items))
	for _, it := range s.Items {
		inv = append(inv, []any{it.ID, it.Name, it.Category, ptr.Deref(it.Description), it.PricePerDay, it.Quantity, it.CreatedAt})
	}
	bks := make([][]any, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		var total any
		if b.TotalAmount != nil || b.TotalCost != nil {
			total = b.Amount()
		}
		bks = append(bks, []any{
			b.ID, b.CustomerName, b.Phone, ptr.Deref(b.Email), b.EventType, b.EventDate,
			ptr.Deref(b.ReturnDate), b.Location, b.Status.String(), total,
			EncodeLineItems(b.Items), ptr.Deref(b.Notes), b.CreatedAt,
		})
	}
	svc := make([][]any, 0, len(s.Packages))
	for _, p := range s.Packages {
		svc = append(svc, []any{p.ID, p.Name, p.Description, p.Price, p.IsFeatured})
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetInventory, inventoryHeader, inv},
		{SheetBookings, bookingsHeader, bks},
		{SheetServices, servicesHeader, svc},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.header, sh.rows, bold); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(err, "failed to write xlsx")
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return errs.Wrap(err, "failed to write header of "+sheet)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return errs.Wrap(err, "failed to style header of "+sheet)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errs.Wrap(err, "failed to address row")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errs.Wrapf(err, "failed to write %s row %d", sheet, i+2)
		}
	}
	return nil
}

// ImportXLSX reads a workbook produced by ExportXLSX. Columns are located by
// header name. A missing sheet leaves the matching collection absent.
func ImportXLSX(r io.Reader) (*Snapshot, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to open xlsx"), ErrUnreadableFile)
	}
	defer f.Close()

	s := &Snapshot{}

	if rows, ok, err := sheetRows(f, SheetInventory); err != nil {
		return nil, err
	} else if ok {
		s.HasItems = true
		s.Items, err = readItems(rows)
		if err != nil {
			return nil, err
		}
	}

	if rows, ok, err := sheetRows(f, SheetBookings); err != nil {
		return nil, err
	} else if ok {
		s.HasBookings = true
		s.Bookings, err = readBookings(rows)
		if err != nil {
			return nil, err
		}
	}

	if rows, ok, err := sheetRows(f, SheetServices); err != nil {
		return nil, err
	} else if ok {
		s.HasPackages = true
		s.Packages, err = readPackages(rows)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func sheetRows(f *excelize.File, name string) ([][]string, bool, error) {
	for _, sheet := range f.GetSheetList() {
		if !strings.EqualFold(sheet, name) {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, false, errs.Mark(errs.Wrap(err, "failed to read sheet "+sheet), ErrUnreadableFile)
		}
		return rows, true, nil
	}
	return nil, false, nil
}

// table gives by-name access to the data rows of a sheet.
type table struct {
	sheet string
	cols  map[string]int
	rows  [][]string
}

var headerAliases = map[string]string{
	"customername": "customer",
	"eventdate":    "date",
	"totalamount":  "total",
	"totalcost":    "total",
	"price/day":    "priceperday",
	"isfeatured":   "featured",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "", "_", "").Replace(h)
	if alias, ok := headerAliases[h]; ok {
		return alias
	}
	return h
}

func newTable(sheet string, rows [][]string) table {
	t := table{sheet: sheet, cols: map[string]int{}}
	if len(rows) == 0 {
		return t
	}
	for i, h := range rows[0] {
		key := normalizeHeader(h)
		if _, dup := t.cols[key]; !dup {
			t.cols[key] = i
		}
	}
	for _, row := range rows[1:] {
		if !blankRow(row) {
			t.rows = append(t.rows, row)
		}
	}
	return t
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (t table) get(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t table) number(row []string, col string, line int) (float64, error) {
	v := t.get(row, col)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return 0, errs.Mark(errs.Newf("%s row %d: invalid %s %q", t.sheet, line, col, v), ErrUnreadableFile)
	}
	return n, nil
}

func (t table) integer(row []string, col string, line int) (int, error) {
	n, err := t.number(row, col, line)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, errs.Mark(errs.Newf("%s row %d: %s must be a whole number, got %q", t.sheet, line, col, t.get(row, col)), ErrUnreadableFile)
	}
	return int(n), nil
}

func (t table) optional(row []string, col string) *string {
	return ptr.NonEmpty(t.get(row, col))
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func readItems(rows [][]string) ([]inventory.Item, error) {
	t := newTable(SheetInventory, rows)
	items := make([]inventory.Item, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		price, err := t.number(row, "priceperday", line)
		if err != nil {
			return nil, err
		}
		qty, err := t.integer(row, "quantity", line)
		if err != nil {
			return nil, err
		}
		items = append(items, inventory.Item{
			ID:          idOrNew(t.get(row, "id")),
			Name:        t.get(row, "name"),
			Category:    t.get(row, "category"),
			Description: t.optional(row, "description"),
			PricePerDay: price,
			Quantity:    qty,
			Images:      []string{inventory.PlaceholderImage},
			CreatedAt:   t.get(row, "createdat"),
		})
	}
	return items, nil
}

func readBookings(rows [][]string) ([]booking.Booking, error) {
	t := newTable(SheetBookings, rows)
	bookings := make([]booking.Booking, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		status, err := booking.ParseStatus(t.get(row, "status"))
		if err != nil {
			status = booking.StatusPending
		}
		b := booking.Booking{
			ID:           idOrNew(t.get(row, "id")),
			CustomerName: t.get(row, "customer"),
			Phone:        t.get(row, "phone"),
			Email:        t.optional(row, "email"),
			EventType:    t.get(row, "eventtype"),
			EventDate:    t.get(row, "date"),
			ReturnDate:   t.optional(row, "returndate"),
			Location:     t.get(row, "location"),
			Status:       status,
			Items:        DecodeLineItems(t.get(row, "items")),
			Notes:        t.optional(row, "notes"),
			CreatedAt:    t.get(row, "createdat"),
		}
		if t.get(row, "total") != "" {
			total, err := t.number(row, "total", line)
			if err != nil {
				return nil, err
			}
			b.TotalAmount = &total
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func readPackages(rows [][]string) ([]catalog.Package, error) {
	t := newTable(SheetServices, rows)
	packages := make([]catalog.Package, 0, len(t.rows))
	for i, row := range t.rows {
		price, err := t.number(row, "price", i+2)
		if err != nil {
			return nil, err
		}
		// anything strconv does not recognize reads as not featured
		featured, _ := strconv.ParseBool(strings.ToLower(t.get(row, "featured")))
		packages = append(packages, catalog.Package{
			ID:          idOrNew(t.get(row, "id")),
			Name:        t.get(row, "name"),
			Description: t.get(row, "description"),
			Price:       price,
			Images:      []string{inventory.PlaceholderImage},
			IsFeatured:  featured,
		})
	}
	return packages, nil
}
