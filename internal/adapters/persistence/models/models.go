package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// ============================================================
// MNP collections
// ============================================================

// Complaint status values. The store accepts other values too; the
// dashboard buckets anything unknown under "failed".
const (
	ComplaintStatusPending  = "pending"
	ComplaintStatusResolved = "resolved"
)

// Complaint represents complaints table. UserID is the owning user,
// always taken from the authenticated caller.
type Complaint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reason    string    `gorm:"size:255;not null" json:"reason"`
	Status    string    `gorm:"size:50;default:'pending'" json:"status"`
	UserID    uint      `gorm:"index;not null" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// PortIn represents port_in_records table
type PortIn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"size:20;not null" json:"number"`
	Operator  string    `gorm:"size:100;not null" json:"operator"`
	Circle    string    `gorm:"size:100;not null" json:"circle"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PortIn) TableName() string {
	return "port_in_records"
}

// PortOut represents port_out_records table
type PortOut struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"size:20;not null" json:"number"`
	Reason    string    `gorm:"size:255;not null" json:"reason"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PortOut) TableName() string {
	return "port_out_records"
}

// Snapback represents snapback_records table
type Snapback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"size:20;not null" json:"number"`
	Operator  string    `gorm:"size:100;not null" json:"operator"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Snapback) TableName() string {
	return "snapback_records"
}

// Subscriber represents subscriber_data table. JSON keys keep the
// upstream NPDB export casing the frontend tables read.
type Subscriber struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	MSISDN     int64      `gorm:"column:msisdn;index" json:"MSISDN"`
	Zone       int64      `gorm:"column:zone" json:"ZONE"`
	LSA        string     `gorm:"column:lsa;size:50" json:"LSA"`
	OID        int64      `gorm:"column:oid" json:"OID"`
	NRH        int64      `gorm:"column:nrh" json:"NRH"`
	LRN        int64      `gorm:"column:lrn" json:"LRN"`
	IntRN1     string     `gorm:"column:int_rn1;size:50" json:"INT_RN1"`
	IntRN2     string     `gorm:"column:int_rn2;size:50" json:"INT_RN2"`
	LastOID    int64      `gorm:"column:last_oid" json:"LAST_OID"`
	Status     string     `gorm:"column:status;size:50" json:"STATUS"`
	CreateOn   *time.Time `gorm:"column:create_on" json:"CREATE_ON"`
	UpdateOn   *time.Time `gorm:"column:update_on" json:"UPDATE_ON"`
	PortOn     *time.Time `gorm:"column:port_on" json:"PORT_ON"`
	UpdateFlag int        `gorm:"column:update_flag" json:"UPDATE_FLAG"`
	DonorLSA   string     `gorm:"column:donor_lsa;size:50" json:"DONOR_LSA"`
	NRHLSA     string     `gorm:"column:nrh_lsa;size:50" json:"NRH_LSA"`
	BCStatus   string     `gorm:"column:bc_status;size:50" json:"BC_STATUS"`
}

func (Subscriber) TableName() string {
	return "subscriber_data"
}

// AutoMigrate creates or updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Complaint{},
		&PortIn{},
		&PortOut{},
		&Snapback{},
		&Subscriber{},
	)
}
