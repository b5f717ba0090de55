package filters

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Defaults for pagination
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params represents the optional filter and pagination query parameters
// shared by record listings
type Params struct {
	MSISDN   string
	Zone     string
	LSA      string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

// FromQuery extracts filter parameters from the request query string.
// Missing page/limit fall back to defaults; unparseable dates are ignored.
func FromQuery(c *fiber.Ctx) *Params {
	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return &Params{
		MSISDN:   c.Query("msisdn"),
		Zone:     c.Query("zone"),
		LSA:      c.Query("lsa"),
		Status:   c.Query("status"),
		DateFrom: parseDate(c.Query("dateFrom")),
		DateTo:   parseDate(c.Query("dateTo")),
		Page:     page,
		Limit:    limit,
	}
}

// Offset computes the skip offset for the current page
func (p *Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Scope builds a GORM scope applying an equality predicate for each
// present scalar parameter and an inclusive date range on dateColumn
func (p *Params) Scope(dateColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.MSISDN != "" {
			db = db.Where("msisdn = ?", p.MSISDN)
		}
		if p.Zone != "" {
			db = db.Where("zone = ?", p.Zone)
		}
		if p.LSA != "" {
			db = db.Where("lsa = ?", p.LSA)
		}
		if p.Status != "" {
			db = db.Where("status = ?", p.Status)
		}
		if p.DateFrom != nil {
			db = db.Where(dateColumn+" >= ?", *p.DateFrom)
		}
		if p.DateTo != nil {
			db = db.Where(dateColumn+" <= ?", *p.DateTo)
		}
		return db
	}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
