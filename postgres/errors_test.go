package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phbpx/leadcapture"
)

func TestErrorMapper(t *testing.T) {
	mapper := ErrorMapper{
		Entity: "Lead",
		Constraints: map[string][]string{
			"leads_email_key": {"email"},
		},
	}

	tests := []struct {
		name    string
		err     error
		kind    leadcapture.Kind
		message string
		fields  map[string]string
	}{
		{
			name:    "unique violation on known constraint",
			err:     &pq.Error{Code: uniqueViolation, Constraint: "leads_email_key"},
			kind:    leadcapture.KindConflict,
			message: "Email already exists",
			fields:  map[string]string{"email": "Email already exists"},
		},
		{
			name: "unique violation falls back to detail",
			err: &pq.Error{
				Code:       uniqueViolation,
				Constraint: "leads_mobile_key",
				Detail:     "Key (mobile)=(+639469228301) already exists.",
			},
			kind:    leadcapture.KindConflict,
			message: "Mobile already exists",
			fields:  map[string]string{"mobile": "Mobile already exists"},
		},
		{
			name:    "unique violation without detail",
			err:     &pq.Error{Code: uniqueViolation},
			kind:    leadcapture.KindConflict,
			message: "Lead already exists",
		},
		{
			name:    "wrapped unique violation",
			err:     fmt.Errorf("insert: %w", &pq.Error{Code: uniqueViolation, Constraint: "leads_email_key"}),
			kind:    leadcapture.KindConflict,
			message: "Email already exists",
			fields:  map[string]string{"email": "Email already exists"},
		},
		{
			name:    "foreign key violation",
			err:     &pq.Error{Code: foreignKeyViolation, Constraint: "service_interests_lead_id_fkey"},
			kind:    leadcapture.KindNotFound,
			message: "Referenced record not found",
		},
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			kind:    leadcapture.KindNotFound,
			message: "Lead not found",
		},
		{
			name:    "other storage error",
			err:     &pq.Error{Code: "40P01", Message: "deadlock detected"},
			kind:    leadcapture.KindInternal,
			message: "Internal server error",
		},
		{
			name:    "non storage error",
			err:     errors.New("context canceled"),
			kind:    leadcapture.KindInternal,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapper.Map(tt.err)

			var derr *leadcapture.Error
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.kind, derr.Kind)
			assert.Equal(t, tt.message, derr.Message)
			assert.Equal(t, tt.fields, derr.Fields)
		})
	}
}

func TestErrorMapperKeepsDiagnostics(t *testing.T) {
	mapper := ErrorMapper{Entity: "Lead"}
	cause := &pq.Error{Code: "40P01", Message: "deadlock detected"}

	err := mapper.Map(cause)

	var pqerr *pq.Error
	require.ErrorAs(t, err, &pqerr, "the storage error stays reachable for logging")
	assert.Contains(t, err.Error(), "40P01")
	assert.Equal(t, "Internal server error", leadcapture.Failure(err).Message)
}

func TestErrorMapperPassesThroughDomainErrors(t *testing.T) {
	mapper := ErrorMapper{Entity: "Lead"}
	in := leadcapture.NotFoundError("Lead not found")

	assert.Same(t, in, mapper.Map(in))
	assert.NoError(t, mapper.Map(nil))
}

func TestConflictMessage(t *testing.T) {
	assert.Equal(t, "LeadId, serviceType already exists", conflictMessage("ServiceInterest", []string{"leadId", "serviceType"}))
	assert.Equal(t, "ServiceInterest already exists", conflictMessage("ServiceInterest", nil))
}
