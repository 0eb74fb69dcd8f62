package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/phbpx/leadcapture"
)

var leadErrors = ErrorMapper{
	Entity: "Lead",
	Constraints: map[string][]string{
		"leads_email_key": {"email"},
		"service_interests_lead_id_service_type_key": {"leadId", "serviceType"},
	},
}

// LeadStore persists leads and their service interests.
type LeadStore struct {
	db *sqlx.DB
}

// NewLeadStore constructs a LeadStore on db.
func NewLeadStore(db *sqlx.DB) *LeadStore {
	return &LeadStore{
		db: db,
	}
}

// Create inserts the lead and one service interest per distinct service type
// in a single transaction.
func (ls *LeadStore) Create(ctx context.Context, newLead leadcapture.NewLead) (leadcapture.Lead, error) {
	tx, err := ls.db.BeginTxx(ctx, nil)
	if err != nil {
		return leadcapture.Lead{}, leadErrors.Map(err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	const insertLead = `
	INSERT INTO leads (
		name, mobile, email, post_code
	) VALUES (
		$1, $2, $3, $4
	)
	RETURNING id, name, mobile, email, post_code, created_at, updated_at`

	var lead leadcapture.Lead
	err = tx.GetContext(ctx, &lead, insertLead,
		newLead.Name,
		newLead.Mobile,
		newLead.Email,
		newLead.PostCode,
	)
	if err != nil {
		return leadcapture.Lead{}, leadErrors.Map(err)
	}

	const insertInterest = `
	INSERT INTO service_interests (
		lead_id, service_type
	) VALUES (
		$1, $2
	)
	RETURNING id, lead_id, service_type, created_at, updated_at`

	types := newLead.DistinctServiceTypes()
	lead.ServiceInterest = make([]leadcapture.ServiceInterest, 0, len(types))
	for _, st := range types {
		var si leadcapture.ServiceInterest
		if err := tx.GetContext(ctx, &si, insertInterest, lead.ID, string(st)); err != nil {
			return leadcapture.Lead{}, leadErrors.Map(err)
		}
		lead.ServiceInterest = append(lead.ServiceInterest, si)
	}

	if err := tx.Commit(); err != nil {
		return leadcapture.Lead{}, leadErrors.Map(err)
	}

	return lead, nil
}

// GetByID returns the lead with its service interests ordered by id.
func (ls *LeadStore) GetByID(ctx context.Context, id int64) (leadcapture.Lead, error) {
	const queryLead = `
	SELECT
		id,
		name,
		mobile,
		email,
		post_code,
		created_at,
		updated_at
	FROM leads
	WHERE id = $1`

	var lead leadcapture.Lead
	if err := ls.db.GetContext(ctx, &lead, queryLead, id); err != nil {
		return leadcapture.Lead{}, leadErrors.Map(err)
	}

	const queryInterests = `
	SELECT
		id,
		lead_id,
		service_type,
		created_at,
		updated_at
	FROM service_interests
	WHERE lead_id = $1
	ORDER BY id`

	lead.ServiceInterest = []leadcapture.ServiceInterest{}
	if err := ls.db.SelectContext(ctx, &lead.ServiceInterest, queryInterests, id); err != nil {
		return leadcapture.Lead{}, leadErrors.Map(err)
	}

	return lead, nil
}
