// Package importer bulk-loads property listings from an Excel workbook.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// ErrMissingColumns is returned when the header row lacks a required column.
var ErrMissingColumns = errors.New("missing required columns")

var requiredColumns = []string{"title", "price"}

// headerAliases maps alternative header spellings onto wire field names.
var headerAliases = map[string]string{
	"name":         "title",
	"type":         "property_type",
	"listing":      "listing_type",
	"beds":         "bedrooms",
	"baths":        "bathrooms",
	"sqft":         "square_feet",
	"size":         "area",
	"tour":         "virtual_tour_url",
	"virtual_tour": "virtual_tour_url",
	"video":        "video_url",
	"sites":        "sources",
	"lat":          "latitude",
	"lng":          "longitude",
}

// ImportError reports a row that was skipped. Row is the 1-based sheet row.
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Result summarizes an import run.
type Result struct {
	Total   int           `json:"total"`
	Created []string      `json:"created"`
	Errors  []ImportError `json:"errors"`
}

// Creator is the slice of the Properties facade the importer needs.
type Creator interface {
	Create(ctx context.Context, draft models.PropertyDraft) (models.Property, error)
}

type Importer struct {
	creator Creator
	log     logger.Logger
}

func New(creator Creator, log logger.Logger) *Importer {
	return &Importer{creator: creator, log: log}
}

// Import reads the first sheet of r and creates one listing per data row.
// Row problems are collected in the result; only an unreadable workbook or a
// bad header row fails the whole import.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	rows, err := openExcelRows(r)
	if err != nil {
		return nil, err
	}
	res := &Result{Created: []string{}, Errors: []ImportError{}}
	if len(rows) == 0 {
		return res, nil
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	for idx, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		rowNum := idx + 2
		res.Total++

		draft, msg := parseRow(cols, cells)
		if msg != "" {
			res.Errors = append(res.Errors, ImportError{Row: rowNum, Error: msg})
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		created, err := i.creator.Create(ctx, draft)
		if err != nil {
			i.log.Warn("Listing import failed",
				logger.Int("row", rowNum),
				logger.Error(err),
			)
			res.Errors = append(res.Errors, ImportError{Row: rowNum, Error: err.Error()})
			continue
		}
		res.Created = append(res.Created, created.ID)
	}

	i.log.Info("Listing import finished",
		logger.Int("total", res.Total),
		logger.Int("created", len(res.Created)),
		logger.Int("failed", len(res.Errors)),
	)
	return res, nil
}

func openExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return [][]string{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}

// columnMap is wire field name to 0-based column index.
type columnMap map[string]int

func mapColumns(header []string) (columnMap, error) {
	cols := make(columnMap, len(header))
	for idx, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		name = strings.Join(strings.Fields(name), "_")
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if name == "" {
			continue
		}
		if _, dup := cols[name]; !dup {
			cols[name] = idx
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columnMap) cell(cells []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseRow builds a draft or returns a message describing the first problem.
func parseRow(cols columnMap, cells []string) (models.PropertyDraft, string) {
	var d models.PropertyDraft
	text := func(name string) *string {
		if v := cols.cell(cells, name); v != "" {
			return &v
		}
		return nil
	}

	d.Title = text("title")
	if d.Title == nil {
		return d, "title is required"
	}
	d.Price = text("price")
	if d.Price == nil {
		return d, "price is required"
	}
	if _, ok := normalize.ParseCurrency(*d.Price); !ok {
		return d, fmt.Sprintf("price %q has no digits", *d.Price)
	}

	for _, name := range []string{"status", "listing_type"} {
		v := text(name)
		if v == nil {
			continue
		}
		lowered := strings.ToLower(*v)
		if f, ok := normalize.Property.Field(name); ok && !slices.Contains(f.Enum, lowered) {
			return d, fmt.Sprintf("%s must be one of: %s", name, strings.Join(f.Enum, ", "))
		}
		if name == "status" {
			d.Status = &lowered
		} else {
			d.ListingType = &lowered
		}
	}

	d.Description = text("description")
	d.Location = text("location")
	d.PropertyType = text("property_type")
	d.Area = text("area")
	d.VirtualTourURL = text("virtual_tour_url")
	d.VideoURL = text("video_url")
	d.Images = splitList(cols.cell(cells, "images"))
	d.Amenities = splitList(cols.cell(cells, "amenities"))
	d.Features = splitList(cols.cell(cells, "features"))

	var err error
	if d.Bedrooms, err = intCell(cols, cells, "bedrooms"); err != nil {
		return d, err.Error()
	}
	if d.YearBuilt, err = intCell(cols, cells, "year_built"); err != nil {
		return d, err.Error()
	}
	for name, dst := range map[string]**float64{
		"bathrooms":   &d.Bathrooms,
		"square_feet": &d.SquareFeet,
		"lot_size":    &d.LotSize,
		"latitude":    &d.Latitude,
		"longitude":   &d.Longitude,
	} {
		if *dst, err = floatCell(cols, cells, name); err != nil {
			return d, err.Error()
		}
	}

	if v := cols.cell(cells, "featured"); v != "" {
		b := parseYes(v)
		d.Featured = &b
	}
	if v := cols.cell(cells, "published"); v != "" {
		b := parseYes(v)
		d.Published = &b
	}
	for _, raw := range splitList(cols.cell(cells, "sources")) {
		site, err := models.ParseSite(strings.ToLower(raw))
		if err != nil {
			return d, err.Error()
		}
		d.Sources = append(d.Sources, site)
	}
	return d, ""
}

// splitList splits a cell on commas, semicolons and line breaks.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intCell(cols columnMap, cells []string, name string) (*int, error) {
	v := cols.cell(cells, name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(v, ",", ""))
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", name)
	}
	return &n, nil
}

func floatCell(cols columnMap, cells []string, name string) (*float64, error) {
	v := cols.cell(cells, name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &n, nil
}

func parseYes(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "y", "true", "1", "x":
		return true
	}
	return false
}
