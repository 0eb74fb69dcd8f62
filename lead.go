package leadcapture

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=lead.go -destination=mocks/lead_store.go -package=mocks LeadStore

// ServiceType is a service category a lead can express interest in. The same
// values back the service_type enum in the database.
type ServiceType string

const (
	ServiceDelivery ServiceType = "DELIVERY"
	ServicePickup   ServiceType = "PICKUP"
	ServicePayment  ServiceType = "PAYMENT"
)

// ServiceTypes returns every known service type in declaration order.
func ServiceTypes() []ServiceType {
	return []ServiceType{ServiceDelivery, ServicePickup, ServicePayment}
}

// Valid reports whether st is one of the known service types.
func (st ServiceType) Valid() bool {
	switch st {
	case ServiceDelivery, ServicePickup, ServicePayment:
		return true
	}
	return false
}

// ParseServiceType converts s into a ServiceType.
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown service type %q", s)
	}
	return st, nil
}

// Lead is a captured expression of interest.
type Lead struct {
	ID              int64             `json:"id" db:"id"`
	Name            string            `json:"name" db:"name"`
	Mobile          string            `json:"mobile" db:"mobile"`
	Email           string            `json:"email" db:"email"`
	PostCode        string            `json:"postCode" db:"post_code"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
	ServiceInterest []ServiceInterest `json:"serviceInterest"`
}

// ServiceInterest is one service type selected by a lead.
type ServiceInterest struct {
	ID          int64       `json:"id" db:"id"`
	LeadID      int64       `json:"-" db:"lead_id"`
	ServiceType ServiceType `json:"serviceType" db:"service_type"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// NewLead is the registration payload.
type NewLead struct {
	Name        string        `json:"name" validate:"required"`
	Email       string        `json:"email" validate:"required,email"`
	Mobile      string        `json:"mobile" validate:"required,phone"`
	PostCode    string        `json:"postCode" validate:"required"`
	ServiceType []ServiceType `json:"serviceType" validate:"min=1,dive,servicetype"`
}

// DistinctServiceTypes returns the payload's service types with duplicates
// removed, keeping the first occurrence of each.
func (nl NewLead) DistinctServiceTypes() []ServiceType {
	seen := make(map[ServiceType]struct{}, len(nl.ServiceType))
	out := make([]ServiceType, 0, len(nl.ServiceType))
	for _, st := range nl.ServiceType {
		if _, ok := seen[st]; ok {
			continue
		}
		seen[st] = struct{}{}
		out = append(out, st)
	}
	return out
}

// LeadStore persists leads. Implementations return *Error values only.
type LeadStore interface {
	Create(ctx context.Context, newLead NewLead) (Lead, error)
	GetByID(ctx context.Context, id int64) (Lead, error)
}
